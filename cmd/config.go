package cmd

// Config carries every runtime setting of the service, loaded from the
// environment in cmd/app.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// JWTSecret signs and verifies actor bearer tokens.
	JWTSecret string

	// UPIAddress is the payee virtual address used in payment intents.
	UPIAddress string

	// ChatStudentUsername is the account chat-placed orders run under.
	ChatStudentUsername string
}
