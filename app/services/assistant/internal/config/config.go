// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	LogConf logx.LogConf

	// Ark LLM access. Optional: when ApiKey is empty the assistant runs on
	// pattern extraction and canned wording alone.
	ArkConf ArkConf

	// Catalog source. Mode selects tsv or mysql.
	CatalogConf CatalogConf
	MysqlConf   sqlx.SqlConf

	SessionConf SessionConf

	RecommendConf RecommendConf

	AsynqConf       AsynqRedisConf
	AsynqServerConf AsynqServerConf

	KafkaConf KafkaConf

	// AdminToken protects the catalog refresh route. Empty disables it.
	AdminToken string

	SnowflakeNode int64
}

type ArkConf struct {
	ApiKey  string
	Model   string
	BaseURL string
	// Extractor timeout in seconds for one slot-extraction call.
	ExtractTimeoutSeconds int
}

type CatalogConf struct {
	// Mode is "tsv" or "mysql".
	Mode string
	// Dir holds plants.tsv, products.tsv and kits.tsv when Mode is tsv.
	Dir string
	// RefreshIntervalMinutes schedules periodic catalog reloads, 0 disables.
	RefreshIntervalMinutes int
}

type SessionConf struct {
	TTLMinutes int
}

type RecommendConf struct {
	MaxPlants   int
	MaxProducts int
	MaxKits     int
}

// Minimal redis client config for Asynq
type AsynqRedisConf struct {
	Addr string
}

// Minimal asynq server config
type AsynqServerConf struct {
	Concurrency int
	Queues      map[string]int
}

type KafkaConf struct {
	Broker           []string
	RecommendedTopic string
	CatalogTopic     string
}
