// Package jobfile loads estimate jobs from YAML files.
//
// A job file is the caller-side input to the engine: an ordered item list
// plus optional customer preferences:
//
//	job: "Main St storefront"
//	customer:
//	  led_type: perm-650
//	  ul_default: "yes"
//	items:
//	  - category: channel_letters
//	    fields:
//	      letters: "18 x 4, 24"
//	      style: front-lit
package jobfile

import (
	"os"

	"gopkg.in/yaml.v3"

	"signcost/core/estimate"
	"signcost/internal/errors"
)

// Job is a loaded estimate job.
type Job struct {
	// Name is the job label, for display only.
	Name string

	// Items is the ordered line-item list.
	Items []estimate.LineItemInput

	// Preferences is the customer/job preference map.
	Preferences estimate.Preferences
}

type fileBody struct {
	Job      string            `yaml:"job"`
	Customer map[string]string `yaml:"customer"`
	Items    []itemBody        `yaml:"items"`
}

type itemBody struct {
	Category  string                 `yaml:"category"`
	Fields    map[string]interface{} `yaml:"fields"`
	Overrides map[string]string      `yaml:"overrides"`
}

// Load reads and parses a YAML job file.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeInput, err, "failed to read job file %s", path)
	}
	return LoadBytes(data, path)
}

// LoadBytes parses job-file source already in memory.
func LoadBytes(data []byte, path string) (*Job, error) {
	var body fileBody
	if err := yaml.Unmarshal(data, &body); err != nil {
		return nil, errors.Wrapf(errors.TypeInput, err, "failed to parse job file %s", path)
	}
	if len(body.Items) == 0 {
		return nil, errors.Newf(errors.TypeInput, "job file %s has no items", path)
	}

	job := &Job{
		Name:        body.Job,
		Preferences: estimate.Preferences(body.Customer),
	}
	for i, item := range body.Items {
		if item.Category == "" {
			return nil, errors.Newf(errors.TypeInput, "job file %s: item %d has no category", path, i)
		}
		job.Items = append(job.Items, estimate.LineItemInput{
			Category:  item.Category,
			Fields:    item.Fields,
			Overrides: item.Overrides,
			Position:  i,
		})
	}
	return job, nil
}
