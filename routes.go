// This package contains the track comparison engine and its result types. No I/O imports.
package routes

const(
	// The default distance within which two tracks count as running together.
	// Wide enough to absorb consumer GPS drift, narrow enough that parallel
	// streets stay distinct.
	KDefaultThresholdMeters = 40.0
)
