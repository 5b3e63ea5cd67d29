// Package schemas embeds the JSON Resume schema so validation works from any working directory.
package schemas

import _ "embed"

// ResumeSchemaFile is the repository path of the embedded schema.
const ResumeSchemaFile = "schemas/resume.schema.json"

// ResumeSchema is the JSON Resume v1.0.0 schema (draft-07).
//
//go:embed resume.schema.json
var ResumeSchema []byte
