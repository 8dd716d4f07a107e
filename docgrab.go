// Package docgrab bundles a documentation site into a single text file.
// It fetches a landing page through a content-extraction proxy, discovers
// the links mentioned in its text, asks a language model to keep only the
// documentation-related ones, fetches those concurrently and concatenates
// the results.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., openai/, gemini/, jina/, rod/,
// trafilatura/).
package docgrab
