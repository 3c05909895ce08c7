package workshop

import "strings"

// folderNameReplacer rewrites characters the launcher strips when it
// creates workshop folders. A display name like "RHS: Escalation" is
// installed as "@RHS- Escalation".
var folderNameReplacer = strings.NewReplacer(":", "-", "/", "-")

// Sanitize replaces every ':' and '/' in a mod display name with '-'.
// It is idempotent and leaves all other characters untouched.
func Sanitize(name string) string {
	return folderNameReplacer.Replace(name)
}
