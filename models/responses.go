package models

// Greeting is the body of the hello route.
type Greeting struct {
	Message string `json:"message"`
}

// AppInfo describes the running service.
type AppInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Environment string `json:"environment"`

	BuildVersion string `json:"build_version"`
	BuildDate    string `json:"build_date"`
	BuildCommit  string `json:"build_commit"`
}

// HealthStatus is the body of the liveness route.
type HealthStatus struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of error responses.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
