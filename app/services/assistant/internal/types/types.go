// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type StartSessionResponse struct {
	SessionId string `json:"session_id"`
	State     string `json:"state"`
	Reply     string `json:"reply"`
}

type ChatRequest struct {
	SessionId string `json:"session_id,optional"`
	Message   string `json:"message"`
}

type ChatResponse struct {
	SessionId      string          `json:"session_id"`
	State          string          `json:"state"`
	Reply          string          `json:"reply"`
	SideIntent     string          `json:"side_intent,omitempty"`
	Missing        []string        `json:"missing,omitempty"`
	Recommendation *Recommendation `json:"recommendation,omitempty"`
}

type ResetSessionRequest struct {
	SessionId string `json:"session_id"`
}

type ResetSessionResponse struct {
	SessionId string `json:"session_id"`
	State     string `json:"state"`
	Reply     string `json:"reply"`
}

type Recommendation struct {
	Plants   []RecommendedPlant   `json:"plants"`
	Products []RecommendedProduct `json:"products,omitempty"`
	Kits     []RecommendedKit     `json:"kits,omitempty"`
	Relaxed  []string             `json:"relaxed,omitempty"`
}

type RecommendedPlant struct {
	Id             string    `json:"id"`
	Name           string    `json:"name"`
	ScientificName string    `json:"scientific_name,omitempty"`
	Score          float64   `json:"score"`
	SubScores      SubScores `json:"sub_scores"`
	Light          string    `json:"light"`
	Difficulty     int       `json:"difficulty"`
	Maintenance    string    `json:"maintenance"`
	WaterEveryDays int       `json:"water_every_days"`
	PetSafe        bool      `json:"pet_safe"`
	AirPurifying   bool      `json:"air_purifying"`
}

type SubScores struct {
	Light         float64 `json:"light"`
	DifficultyFit float64 `json:"difficulty_fit"`
	Maintenance   float64 `json:"maintenance"`
}

type RecommendedProduct struct {
	Id         string  `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	PriceCents int64   `json:"price_cents"`
	Price      float64 `json:"price"`
}

type RecommendedKit struct {
	Id         string  `json:"id"`
	Name       string  `json:"name"`
	PriceCents int64   `json:"price_cents"`
	Price      float64 `json:"price"`
	Difficulty int     `json:"difficulty"`
}

type ListPlantsRequest struct {
	Keyword  string `form:"keyword,optional"`
	Page     int    `form:"page,optional,default=1"`
	PageSize int    `form:"page_size,optional,default=20"`
}

type ListPlantsResponse struct {
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Plants   []PlantInfo `json:"plants"`
}

type PlantInfo struct {
	Id             string   `json:"id"`
	Name           string   `json:"name"`
	ScientificName string   `json:"scientific_name,omitempty"`
	Light          string   `json:"light"`
	Humidity       string   `json:"humidity"`
	Difficulty     int      `json:"difficulty"`
	Maintenance    string   `json:"maintenance"`
	WaterEveryDays int      `json:"water_every_days"`
	Rooms          []string `json:"rooms"`
	PetSafe        bool     `json:"pet_safe"`
	AirPurifying   bool     `json:"air_purifying"`
	Popularity     int      `json:"popularity"`
}

type GetPlantRequest struct {
	Id string `path:"id"`
}

type GetPlantResponse struct {
	Plant PlantInfo `json:"plant"`
}

type RefreshCatalogResponse struct {
	Enqueued bool `json:"enqueued"`
}
