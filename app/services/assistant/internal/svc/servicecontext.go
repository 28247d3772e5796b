package svc

import (
	"context"
	"strings"
	"time"

	"SproutAI/app/common/consts/biz"
	"SproutAI/app/common/middleware"
	"SproutAI/app/common/snowflake"
	dal "SproutAI/app/dal/catalog"
	"SproutAI/app/services/assistant/internal/assistant/catalog"
	"SproutAI/app/services/assistant/internal/assistant/convo"
	"SproutAI/app/services/assistant/internal/assistant/extract"
	"SproutAI/app/services/assistant/internal/assistant/recommend"
	"SproutAI/app/services/assistant/internal/config"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
	"github.com/hibiken/asynq"
	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/rest"
)

type ServiceContext struct {
	Config config.Config

	ChatModel *ark.ChatModel

	Catalog *catalog.Store
	// Plants is only wired in mysql mode; the list endpoints fall back to
	// the snapshot otherwise.
	Plants dal.PlantsModel

	Sessions  *convo.SessionStore
	Extractor extract.Extractor
	Responder *convo.Responder
	Convo     *convo.Engine

	AdminMiddleware rest.Middleware

	AsynqClient *asynq.Client

	RecommendedWriter *kafka.Writer
	CatalogWriter     *kafka.Writer
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)
	sc := &ServiceContext{Config: c}

	if c.SnowflakeNode > 0 {
		if err := snowflake.SetNodeID(c.SnowflakeNode); err != nil {
			logx.Errorw("set snowflake node failed", logx.Field("err", err))
		}
	}

	if c.ArkConf.ApiKey != "" {
		cm, err := ark.NewChatModel(context.Background(), &ark.ChatModelConfig{
			BaseURL: c.ArkConf.BaseURL,
			APIKey:  c.ArkConf.ApiKey,
			Model:   c.ArkConf.Model,
		})
		if err != nil {
			logx.Errorw("init ark chat model failed", logx.Field("err", err))
		} else {
			sc.ChatModel = cm
			logx.Infow("ark chat model initialized")
		}
	}

	var source catalog.Source
	if strings.EqualFold(c.CatalogConf.Mode, "mysql") {
		db := sqlx.NewMysql(c.MysqlConf.DataSource)
		plants := dal.NewPlantsModel(db)
		sc.Plants = plants
		source = catalog.NewDBSource(plants, dal.NewProductsModel(db), dal.NewKitsModel(db))
	} else {
		source = catalog.NewFileSource(c.CatalogConf.Dir)
	}
	sc.Catalog = catalog.NewStore(source)
	if _, err := sc.Catalog.Refresh(context.Background()); err != nil {
		logx.Errorw("initial catalog load failed", logx.Field("err", err))
	}

	ttl := time.Duration(c.SessionConf.TTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = biz.SessionTTL
	}
	sessions, err := convo.NewSessionStore(ttl)
	if err != nil {
		logx.Must(err)
	}
	sc.Sessions = sessions

	rootLog := logx.WithContext(context.Background())
	var llm extract.Extractor
	if sc.ChatModel != nil {
		llmExtractor, err := extract.NewLLMExtractor(context.Background(), rootLog, sc.ChatModel)
		if err != nil {
			logx.Errorw("init llm slot extractor failed", logx.Field("err", err))
		} else {
			llm = llmExtractor
		}
	}
	extractTimeout := time.Duration(c.ArkConf.ExtractTimeoutSeconds) * time.Second
	sc.Extractor = extract.NewCombinedExtractor(rootLog, llm, extractTimeout)

	// Assign only when initialized: a typed nil *ark.ChatModel must not
	// leak into the model interface.
	var responderModel model.BaseChatModel
	if sc.ChatModel != nil {
		responderModel = sc.ChatModel
	}
	sc.Responder = convo.NewResponder(rootLog, responderModel)

	limits := recommend.Limits{
		Plants:   c.RecommendConf.MaxPlants,
		Products: c.RecommendConf.MaxProducts,
		Kits:     c.RecommendConf.MaxKits,
	}
	sc.Convo = convo.NewEngine(sc.Sessions, sc.Extractor, sc.Catalog, sc.Responder, limits)

	sc.AdminMiddleware = middleware.NewAdminMiddleware(c.AdminToken).Handle

	if c.AsynqConf.Addr != "" {
		sc.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: c.AsynqConf.Addr})
	}

	if len(c.KafkaConf.Broker) > 0 && c.KafkaConf.RecommendedTopic != "" {
		sc.RecommendedWriter = newWriter(c.KafkaConf.Broker, c.KafkaConf.RecommendedTopic)
	}
	if len(c.KafkaConf.Broker) > 0 && c.KafkaConf.CatalogTopic != "" {
		sc.CatalogWriter = newWriter(c.KafkaConf.Broker, c.KafkaConf.CatalogTopic)
	}

	return sc
}

// Reusable Kafka writer to reduce per-send overhead and latency
func newWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		RequiredAcks:           kafka.RequireOne,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           5 * time.Millisecond,
	}
}
