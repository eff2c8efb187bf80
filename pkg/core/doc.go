// Package core defines the shared language of the JioAstro yoga system.
//
// This package contains:
//   - Domain entities (YogaDefinition, YogaDetection, NormalizedYoga, Timeline)
//   - Enumerations (Tier, Strength, Planet, PeriodLevel, ActivationStatus)
//   - Service interfaces (Store, ReviewStore, AnalysisStore)
//   - Structured result types (NotFound, CoverageReport)
//
// The Golden Rule: pkg/core imports ONLY the standard library.
// All other packages depend on core, not the reverse.
package core
