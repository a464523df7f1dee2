package store

import (
	"encoding/json"
	"fmt"
)

// NamePolicy decides whether a bucket should be created under its sanitized
// name. original is the requested name, sanitized the name that would be
// used. A non-nil error aborts the creation.
type NamePolicy func(original, sanitized string) error

// LenientNames accepts every sanitized name.
func LenientNames(original, sanitized string) error {
	return nil
}

// StrictNames rejects any name that needed sanitizing.
func StrictNames(original, sanitized string) error {
	return fmt.Errorf("%w: %q contains characters outside [a-z0-9.], would become %q", ErrInvalidBucketName, original, sanitized)
}

type policyDocument struct {
	Version   string            `json:"Version"`
	Statement []policyStatement `json:"Statement"`
}

type policyStatement struct {
	Sid       string            `json:"Sid"`
	Effect    string            `json:"Effect"`
	Principal map[string]string `json:"Principal"`
	Action    string            `json:"Action"`
	Resource  string            `json:"Resource"`
}

// PublicReadPolicy returns the bucket policy granting anonymous GetObject on
// every object of bucket.
func PublicReadPolicy(bucket string) string {
	doc := policyDocument{
		Version: "2008-10-17",
		Statement: []policyStatement{{
			Sid:       "AddPerm",
			Effect:    "Allow",
			Principal: map[string]string{"AWS": "*"},
			Action:    "s3:GetObject",
			Resource:  "arn:aws:s3:::" + bucket + "/*",
		}},
	}
	// Marshalling a fixed struct of strings cannot fail
	b, _ := json.Marshal(doc)
	return string(b)
}
