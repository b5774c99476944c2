package api

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Repo    string `json:"repo"`
}

type CreatePostResponse struct {
	Message   string `json:"message"`
	ID        string `json:"id"`
	URL       string `json:"url"`
	BannerURL string `json:"banner_url"`
}

type DeletePostRequest struct {
	ID string `json:"id"`
}

type DeletePostResponse struct {
	Message string `json:"message"`
}
