// Package resume holds the structured source data the assistant answers
// questions about: identity, contact details, skills, work history,
// education and certifications.
//
// The package ships with a built-in profile (Default) and supports loading
// a custom one from YAML (Load). Skill categories are ordered so that the
// chunks the engine builds from a profile are deterministic.
package resume
