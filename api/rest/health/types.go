package health

// StatusOK is the only status the server reports
const StatusOK = "ok"

// Response represents the health check response
type Response struct {
	Status string `json:"status"`
}
