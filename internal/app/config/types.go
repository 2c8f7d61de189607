package config

type (
	DriverConfig struct {
		MongoDB MongoDB
		Redis   Redis
		Logger  Logger
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	InternalConfig struct {
		App            App
		JWT            JWT
		PaymentGateway PaymentGateway
	}
	App struct {
		Env                    string
		Port                   string
		Version                string
		Timezone               string
		MaxRequests            int
		ShutdownTimeout        int
		RequestTimeoutInSecond int
		RoleCacheTTLInSecond   int
	}
	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
	PaymentGateway struct {
		BaseUrl   string
		SecretKey string
		Currency  string
	}
)
