package config

import (
	"docportal-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "doctors_portal"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                    utils.GetEnvString("APP_ENV", "development"),
			Port:                   utils.GetEnvString("APP_PORT", ":8080"),
			Version:                utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:               utils.GetEnvString("APP_TIMEZONE", "UTC"),
			MaxRequests:            utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:        utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSecond: utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECOND", 10),
			RoleCacheTTLInSecond:   utils.GetEnvInt("APP_ROLE_CACHE_TTL_IN_SECOND", 60),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 12),
		},
		PaymentGateway: PaymentGateway{
			BaseUrl:   utils.GetEnvString("PAYMENT_GATEWAY_BASE_URL", "https://api.stripe.com"),
			SecretKey: utils.GetEnvString("PAYMENT_GATEWAY_SECRET_KEY", ""),
			Currency:  utils.GetEnvString("PAYMENT_GATEWAY_CURRENCY", "usd"),
		},
	}
}
