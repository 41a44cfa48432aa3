package assistant

// Mode notes surfaced to the caller describing which pipeline stage
// produced the answer. The strings are part of the outbound contract.
const (
	ModePricing    = "Pricing question — no AI used."
	ModeFAQ        = "FAQ matched."
	ModeWebsite    = "Website text match"
	ModeNoMatch    = "No match"
	ModeCompletion = "Groq AI used with your website content."
)

// contactLine is appended verbatim across fallback paths; the completion
// prompt instructs the model to close with exactly this line.
const contactLine = "For a quick quote — call +91-11-42908809 / +91-9911013303 " +
	"or fill the enquiry form on our website."

// Request encapsulates one inbound question.
type Request struct {
	Question string `json:"question"`
}

// Response is returned to the HTTP transport.
type Response struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Sources  []string `json:"sources"`
	ModeNote string   `json:"modeNote"`
}

// Config holds runtime knobs for the assistant pipeline.
type Config struct {
	Model               string
	Temperature         float32
	MaxCompletionTokens int
	TopK                int
}
