package backend

type Settings struct {
	RouterIP   string `json:"router_ip"`
	Username   string `json:"username"`
	WebhookUrl string `json:"webhook_url"`
}
