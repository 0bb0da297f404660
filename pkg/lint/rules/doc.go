// Package rules provides the built-in style rules for docstyle.
//
// # Rules
//
// Rules are registered in this order, which is also the order findings
// are reported in for a document:
//
//   - LINE_WIDTH: line-width - Prose lines must fit the configured width
//
//   - TRAILING_MARKER: trailing-marker - Prose lines end with the trailing marker
//
//   - SECTION_TITLE_NO_NUMBERING: section-title-no-numbering - Headings carry no numeric prefix
//
//   - EXPLANATION_MIN_LENGTH: explanation-min-length - Code examples are explained in enough sentences
//
//   - CODE_FENCE_LANGUAGE_TAG: code-fence-language-tag - Fences declare the expected language
//
//   - TERMINOLOGY_NO_PARENS_ON_NAMES: terminology-no-parens-on-names - Names are written without ()
//
// # Options
//
// Each rule reads its options from rules.<ID>.options in the config file and
// falls back to the matching top-level setting:
//
//	rules:
//	  LINE_WIDTH:
//	    options:
//	      max: 100
//	  TERMINOLOGY_NO_PARENS_ON_NAMES:
//	    options:
//	      include_inline_code: true
package rules
