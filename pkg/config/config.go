package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every variable (ESTIMATOR_APP_PORT, ...). The bare
// tag names (PORT, REDIS_URL, ...) are accepted as fallbacks.
const EnvPrefix = "ESTIMATOR"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App      AppConfig
	AWS      AWSConfig
	Redis    RedisConfig
	Catalog  CatalogConfig
	Gateways GatewayConfig
	Estimate EstimateConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Estimate.TaxRate < 0 || c.Estimate.TaxRate >= 1 {
		return fmt.Errorf("invalid tax rate %v: must be in [0, 1)", c.Estimate.TaxRate)
	}
	if c.Redis.SessionTTL <= 0 {
		return fmt.Errorf("invalid session ttl %s", c.Redis.SessionTTL)
	}
	return nil
}

type AppConfig struct {
	Env          string `envconfig:"APP_ENV" default:"dev"`
	Port         int    `envconfig:"PORT" default:"8080"`
	ServiceName  string `envconfig:"SERVICE_NAME" default:"material-list-builder"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// AWSConfig drives the DynamoDB client. Local DynamoDB does not validate
// credentials, but the AWS SDK requires them, hence the "local" defaults.
type AWSConfig struct {
	Region           string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID      string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey  string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint string `envconfig:"DYNAMODB_ENDPOINT"`
	PreferencesTable string `envconfig:"PREFERENCES_TABLE" default:"client_preferences"`
}

type RedisConfig struct {
	URL          string        `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	SessionTTL   time.Duration `envconfig:"SESSION_TTL" default:"12h"`
	DialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"REDIS_WRITE_TIMEOUT" default:"3s"`
}

// CatalogConfig points at the supplier workbooks and the predetermined lists.
type CatalogConfig struct {
	Dir         string            `envconfig:"CATALOG_DIR" default:"uploads"`
	Supply1File string            `envconfig:"SUPPLY1_FILE" default:"Final_Extracted_Data_Fixed_Logic4.xlsx"`
	Supply2File string            `envconfig:"SUPPLY2_FILE" default:"Supply2.xlsx"`
	Supply3File string            `envconfig:"SUPPLY3_FILE" default:"Lion_Bid_Extract.xlsx"`
	Supply4File string            `envconfig:"SUPPLY4_FILE" default:"Bond_Bid_Extract.xlsx"`
	Lists       map[string]string `envconfig:"PREDETERMINED_LISTS" default:"underground:underground_list.xlsx,rough:rough_list.xlsx,final:final_list.xlsx"`
}

type GatewayConfig struct {
	TemplateSaveURL      string        `envconfig:"TEMPLATE_SAVE_URL" default:"http://localhost:5000/save_template"`
	DocumentGeneratorURL string        `envconfig:"DOCUMENT_GENERATOR_URL" default:"http://localhost:5000/export_pdf"`
	Timeout              time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"15s"`
	// Mock answers exports and template saves locally without calling out.
	Mock bool `envconfig:"GATEWAY_MOCK" default:"false"`
}

type EstimateConfig struct {
	ListBaseURL string  `envconfig:"LIST_BASE_URL" default:"/material_list"`
	TaxRate     float64 `envconfig:"TAX_RATE" default:"0.07"`
}
