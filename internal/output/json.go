package output

import (
	"encoding/json"

	"github.com/adace74/distribulator2-contrib/pkg/model"
	"go.yaml.in/yaml/v3"
)

func ToJSON(r model.Result) (string, error) {
	data, err := json.MarshalIndent(displayResult(r), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func ToYAML(r model.Result) (string, error) {
	data, err := yaml.Marshal(displayResult(r))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// displayResult escapes the remote banner so structured output never
// carries raw control bytes from the peer.
func displayResult(r model.Result) model.Result {
	r.Banner = SanitizeBanner(r.Banner)
	return r
}
