package cmd

// Config carries the runtime settings read from the environment.
// ShiftAutoCloseHours of zero disables the background cleanup job.
type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	RouterBaseURL       string
	ShiftAutoCloseHours int
}
