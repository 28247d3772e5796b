package mq

import "SproutAI/app/common/consts/biz"

const TaskCatalogRefresh = biz.CatalogRefreshTask

type CatalogRefreshPayload struct {
	Reason string `json:"reason"`
}

// RecommendationServedEvent goes to Kafka whenever a session reaches a
// recommendation, for downstream analytics.
type RecommendationServedEvent struct {
	SessionId   string   `json:"session_id"`
	Room        string   `json:"room,omitempty"`
	Light       string   `json:"light,omitempty"`
	Experience  string   `json:"experience,omitempty"`
	Maintenance string   `json:"maintenance,omitempty"`
	PlantIds    []string `json:"plant_ids"`
	Relaxed     []string `json:"relaxed,omitempty"`
	ServedAt    int64    `json:"served_at"`
}

type CatalogRefreshedEvent struct {
	Plants      int   `json:"plants"`
	Products    int   `json:"products"`
	Kits        int   `json:"kits"`
	RefreshedAt int64 `json:"refreshed_at"`
}
