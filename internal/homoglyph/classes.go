package homoglyph

import "strings"

// defaultSpec is the built-in list of equivalence classes, Latin first, then
// Cyrillic lowercase/uppercase shapes shared with Greek.
const defaultSpec = "AАΑ,BВΒ,CС,EЕΕ,HНΗ,IΙ,KКΚ,MМΜ,NΝ,OОΟ,PРΡ,TТΤ,XХΧ,YΥ,ZΖ,ПΠ,ФΦ,ЛΛ,ГΓ," +
	"aаα,cсς,eе,kкκҝ,oоο,pрρ,vν,xхχ,yу,вβ,пπ,тτ,фφ,лλ,ёӗ,йӣ"

// ParseClasses splits a comma-separated class list. Empty segments are kept so
// Build can report them.
func ParseClasses(list string) []string {
	if list == "" {
		return nil
	}
	return strings.Split(list, ",")
}

// DefaultClasses returns a fresh copy of the built-in classes.
func DefaultClasses() []string {
	return ParseClasses(defaultSpec)
}
