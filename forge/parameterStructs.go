package forge

// translationJob is the request payload for a job submission.
type translationJob struct {
	Input  translationInput  `json:"input"`
	Output translationOutput `json:"output"`
}

type translationInput struct {
	// URN identifies the stored design to translate.
	URN string `json:"urn"`

	// CompressedURN marks the design as a compressed package.
	// (Optional) Set together with RootFilename.
	CompressedURN bool `json:"compressedUrn,omitempty"`

	// RootFilename is the entry file inside a compressed package.
	// (Optional)
	RootFilename string `json:"rootFilename,omitempty"`
}

type translationOutput struct {
	Formats []outputFormat `json:"formats"`
}

// outputFormat selects what the translation should produce.
type outputFormat struct {
	Type  string   `json:"type"`
	Views []string `json:"views"`
}

// signedCookiesResponse is the body returned when resolving a derivative
// download. The session credential itself rides on the response cookies, not
// the body.
type signedCookiesResponse struct {
	Etag        string `json:"etag"`
	Size        int64  `json:"size"`
	ContentType string `json:"content-type"`
	Expiration  int64  `json:"expiration"`
	URL         string `json:"url"`
}
