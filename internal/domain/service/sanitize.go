package service

import "regexp"

// SWIFT counterparties are not trusted XML producers. DOCTYPE and ENTITY
// declarations are stripped unconditionally before any parser sees the
// input; this is the sole XXE defense, since an entity-resolving parser
// must never be pointed at untrusted bytes.

var (
	doctypeRe = regexp.MustCompile(`(?is)<!DOCTYPE[^>\[]*(\[[^\]]*\])?[^>]*>`)
	entityRe  = regexp.MustCompile(`(?is)<!ENTITY[^>]*>`)

	// Named entity references. Numeric character references (&#10; etc.)
	// deliberately do not match.
	entityRefRe = regexp.MustCompile(`&([A-Za-z_][A-Za-z0-9._-]*);`)
)

var predefinedEntities = map[string]struct{}{
	"amp": {}, "lt": {}, "gt": {}, "apos": {}, "quot": {},
}

// SanitizeXML removes DOCTYPE and ENTITY declarations from raw XML text.
// References to entities that were defined by a stripped DOCTYPE would make
// a strict parse fail, so any reference that is not one of the five
// predefined XML entities is escaped in place and survives as literal text.
// Sanitization never fails; it only removes or neutralizes dangerous
// constructs.
func SanitizeXML(raw string) string {
	s := doctypeRe.ReplaceAllString(raw, "")
	s = entityRe.ReplaceAllString(s, "")
	s = entityRefRe.ReplaceAllStringFunc(s, func(ref string) string {
		name := ref[1 : len(ref)-1]
		if _, ok := predefinedEntities[name]; ok {
			return ref
		}
		return "&amp;" + name + ";"
	})
	return s
}
