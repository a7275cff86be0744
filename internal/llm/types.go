package llm

// Sampling parameters sent with every inference call. They are fixed, not caller-configurable.
const (
	DefaultMaxNewTokens = 500
	DefaultTemperature  = 0.7
	DefaultDoSample     = true
)

// InferenceParameters holds generation-control values for the text-generation endpoint.
type InferenceParameters struct {
	MaxNewTokens int     `json:"max_new_tokens"`
	Temperature  float64 `json:"temperature"`
	DoSample     bool    `json:"do_sample"`
}

// InferenceRequest represents the request payload for the text-generation endpoint.
type InferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters InferenceParameters `json:"parameters"`
}

// NewInferenceRequest builds the request for a prompt with the fixed sampling parameters.
// The prompt is passed through untouched.
func NewInferenceRequest(prompt string) InferenceRequest {
	return InferenceRequest{
		Inputs: prompt,
		Parameters: InferenceParameters{
			MaxNewTokens: DefaultMaxNewTokens,
			Temperature:  DefaultTemperature,
			DoSample:     DefaultDoSample,
		},
	}
}

// Generation is a single element of the endpoint's success body.
type Generation struct {
	GeneratedText *string `json:"generated_text"`
}
