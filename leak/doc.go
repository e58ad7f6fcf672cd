// Package leak classifies candidate extraction output.
//
// Broken decode paths sometimes hand back the raw object syntax of the PDF
// container (dictionaries, xref tables, stream markers) instead of page
// content. [IsStructureLeak] detects that condition so a tier can discard the
// text and let the orchestrator escalate.
//
// [IsMeaningful] is the complementary check in the other direction: it accepts
// anything that looks like prose and rejects only near-empty or purely
// symbolic/numeric extractions. It is deliberately permissive; it does not
// judge grammar or language.
package leak
