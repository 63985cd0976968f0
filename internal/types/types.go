package types

// Language names as the model sees them in prompts and as clients send them in flow inputs.
const (
	Tigrinya = "Tigrinya"
	English  = "English"
	Arabic   = "Arabic"
	Saho     = "Saho"
	Tigre    = "Tigre"
	Any      = "Any"
)

// Media is a generated image or video.
type Media struct {
	MIMEType string `json:"mimeType"`
	Data     []byte `json:"-"`
	URL      string `json:"url,omitempty"` // remote URL when the provider hosts the bytes
}
