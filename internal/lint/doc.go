// Package lint implements the per-item dataset checks.
//
// An item is one immediate child of the dataset root. [Checker.CheckItem]
// runs the full check sequence for one item: reject non-directories as
// noise, resolve the optional paired image, then decode every mask inside
// the item and compare its shape against the image. Every problem becomes
// a [Diagnostic] that is logged through the injected [Sink] as soon as it
// is found and also returned in the [ItemResult].
//
// CheckItem never panics and never returns early on a bad file; an
// unexpected failure is captured in ItemResult.Err so one corrupt item can
// never abort the batch.
package lint
