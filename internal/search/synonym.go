package search

// Synonyms maps a canonical skill name to the spellings people search for.
var Synonyms = map[string][]string{
	"go":         {"golang"},
	"javascript": {"js", "ecmascript"},
	"typescript": {"ts"},
	"postgresql": {"postgres", "psql"},
	"kubernetes": {"k8s"},
	"node.js":    {"nodejs", "node"},
	"react":      {"react.js", "reactjs"},
	"c#":         {"csharp", "c sharp"},
	"c++":        {"cpp"},
	"frontend":   {"front end", "front-end"},
	"backend":    {"back end", "back-end"},
}

func GetSynonyms(query string) []string {
	if query == "" {
		return []string{}
	}
	if v, ok := Synonyms[query]; ok {
		out := make([]string, 0, len(v))
		out = append(out, v...)
		return out
	}
	return []string{}
}

// Canonical returns the key whose synonym list contains alias, or alias itself.
func Canonical(alias string) string {
	if _, ok := Synonyms[alias]; ok {
		return alias
	}
	for k, syns := range Synonyms {
		for _, s := range syns {
			if s == alias {
				return k
			}
		}
	}
	return alias
}
