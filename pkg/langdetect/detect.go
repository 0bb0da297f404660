// Package langdetect guesses the language of an untagged code fence so
// findings can suggest the tag an author most likely meant.
//
// Tutorials mostly show Java, with the occasional build file, shell
// session or program output, so cheap pattern checks run first and the
// go-enry classifier only settles what they leave open.
package langdetect

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Fence tags returned by Detect.
const (
	LangJava       = "java"
	LangKotlin     = "kotlin"
	LangGroovy     = "groovy"
	LangXML        = "xml"
	LangJSON       = "json"
	LangYAML       = "yaml"
	LangProperties = "properties"
	LangSQL        = "sql"
	LangBash       = "bash"
	LangText       = "text"
)

// candidates limits the classifier to languages seen in tutorial corpora.
var candidates = []string{
	"Java", "Kotlin", "Groovy", "XML", "JSON", "YAML",
	"SQL", "Shell", "INI", "Text",
}

var (
	javaDeclaration = regexp.MustCompile(`\b(public|private|protected)\s+(static\s+)?(final\s+)?(class|interface|enum|record|void|int|String|boolean)\b`)
	javaStatement   = regexp.MustCompile(`(?m)^\s*(final\s+)?(int|long|double|float|char|boolean|byte|short|var|[A-Z]\w*(<[^>]*>)?)(\[\])*\s+\w+\s*(=[^;]*)?;\s*$`)
	kotlinFunction  = regexp.MustCompile(`(?m)^\s*(fun|val)\s+\w+`)
	propertiesLine  = regexp.MustCompile(`(?m)^[\w.-]+\s*=\s*\S`)
)

// Detect returns the fence tag that best matches content.
// Returns "text" if detection fails or confidence is low.
func Detect(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return LangText
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang := detectByPattern(content, trimmed); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return LangText
}

// detectByPattern checks patterns that are highly indicative, most
// specific first.
func detectByPattern(content, trimmed []byte) string {
	str := string(content)

	switch {
	case isJava(str):
		return LangJava
	case kotlinFunction.MatchString(str):
		return LangKotlin
	case bytes.HasPrefix(trimmed, []byte("<?xml")) || bytes.HasPrefix(trimmed, []byte("<project")):
		return LangXML
	case isGradle(str):
		return LangGroovy
	case (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`)):
		return LangJSON
	case isShell(trimmed):
		return LangBash
	case isSQL(str):
		return LangSQL
	case countMatches(propertiesLine, str) >= 2 && !strings.Contains(str, ";"):
		return LangProperties
	case isYAML(content):
		return LangYAML
	}

	return ""
}

// isJava recognizes declarations, imports and typical statements.
func isJava(s string) bool {
	if strings.Contains(s, "System.out.") || strings.Contains(s, "import java.") {
		return true
	}
	if javaDeclaration.MatchString(s) {
		return true
	}
	return javaStatement.MatchString(s)
}

// isGradle recognizes Gradle build scripts.
func isGradle(s string) bool {
	return strings.Contains(s, "dependencies {") &&
		(strings.Contains(s, "implementation ") || strings.Contains(s, "testImplementation "))
}

// isShell recognizes prompt-prefixed command lines and common tool calls.
func isShell(trimmed []byte) bool {
	for _, prefix := range []string{"$ ", "javac ", "java ", "mvn ", "gradle ", "./gradlew ", "jshell"} {
		if bytes.HasPrefix(trimmed, []byte(prefix)) {
			return true
		}
	}
	return false
}

// isSQL recognizes statements starting with a common keyword.
func isSQL(s string) bool {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
		if strings.HasPrefix(upper, kw) {
			return true
		}
	}
	return false
}

// isYAML looks for at least two key: value pairs or list items.
func isYAML(content []byte) bool {
	count := 0
	for _, line := range bytes.Split(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || bytes.HasPrefix(line, []byte("#")) {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.ContainsAny(line, "({;") &&
			!bytes.HasPrefix(line, []byte(`"`)) {
			count++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			count++
		}
	}
	return count >= 2
}

func countMatches(re *regexp.Regexp, s string) int {
	return len(re.FindAllStringIndex(s, -1))
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	switch lang {
	case "Shell":
		return LangBash
	case "INI":
		return LangProperties
	default:
		return strings.ToLower(lang)
	}
}
