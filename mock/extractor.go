package mock

import "github.com/mlipski/siteql"

var _ siteql.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of siteql.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*siteql.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*siteql.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ siteql.Converter = (*Converter)(nil)

// Converter is a mock implementation of siteql.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
