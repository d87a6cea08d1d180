package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/0xPolygon/eth-connector/log"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/valyala/fasttemplate"
)

const (
	startTag = "{{"
	endTag   = "}}"
	// rawMark tags the vars written without quotes, A = {{B}}, so the file parses as TOML
	rawMark = "raw:"
)

var (
	ErrCycleVars                 = errors.New("cycle vars")
	ErrMissingVars               = errors.New("missing vars")
	ErrUnsupportedConfigFileType = errors.New("unsupported config file type")

	rawVarRegexp = regexp.MustCompile(`(=\s*)\{\{([^}]+)\}\}`)

	// fileParsers are the formats converted to TOML before the merge
	fileParsers = map[string]koanf.Parser{
		"json": json.Parser(),
	}
)

// FileData is the content of a config file
type FileData struct {
	Name    string
	Content string
}

// ConfigRender merges config files, the later ones override the keys of the earlier ones,
// and resolves the {{Key}} vars of the values. A var takes the value of the environment
// variable <EnvironmentPrefix>_<Key> if set, the value of Key on the merged config otherwise
type ConfigRender struct {
	FilesData         []FileData
	LookupEnvFunc     func(key string) (string, bool)
	EnvironmentPrefix string
}

func NewConfigRender(filesData []FileData, environmentPrefix string) *ConfigRender {
	return &ConfigRender{
		FilesData:         filesData,
		LookupEnvFunc:     os.LookupEnv,
		EnvironmentPrefix: environmentPrefix,
	}
}

// Render returns the merged config as TOML, with every var resolved
func (c *ConfigRender) Render() (string, error) {
	k, err := c.merge()
	if err != nil {
		return "", err
	}
	if err := c.resolve(k); err != nil {
		return "", err
	}
	out, err := k.Marshal(toml.Parser())
	if err != nil {
		return "", fmt.Errorf("error encoding the rendered config: %w", err)
	}
	return string(out), nil
}

func (c *ConfigRender) merge() (*koanf.Koanf, error) {
	k := koanf.New(".")
	for _, file := range c.FilesData {
		content := rawVarRegexp.ReplaceAllString(file.Content, `${1}"`+startTag+rawMark+`${2}`+endTag+`"`)
		if err := k.Load(rawbytes.Provider([]byte(content)), toml.Parser()); err != nil {
			return nil, fmt.Errorf("error parsing config file %s: %w", file.Name, err)
		}
	}
	return k, nil
}

// resolve replaces the vars in passes, a var is replaced once its key holds no var.
// A pass that replaces nothing while vars are left means they reference each other
func (c *ConfigRender) resolve(k *koanf.Koanf) error {
	values := make(map[string]interface{}, len(k.Keys()))
	for _, key := range k.Keys() {
		values[key] = k.Get(key)
	}
	if missing := c.missingVars(values); len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrMissingVars, missing)
	}

	resolved := make(map[string]interface{})
	for {
		var pending []string
		for key, value := range values {
			text, ok := value.(string)
			if !ok || !hasVars(text) {
				continue
			}
			next, err := c.resolveValue(text, values)
			if err != nil {
				return err
			}
			if nextText, ok := next.(string); ok && nextText == text {
				pending = append(pending, key)
				continue
			}
			values[key] = next
			resolved[key] = next
		}
		if len(pending) == 0 {
			break
		}
		if !canProgress(pending, values) {
			sort.Strings(pending)
			return fmt.Errorf("%w: %v", ErrCycleVars, pending)
		}
	}

	for key, value := range resolved {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("error setting %s: %w", key, err)
		}
	}
	return nil
}

// canProgress reports if a var of the pending keys points to a key already free of vars
func canProgress(pending []string, values map[string]interface{}) bool {
	for _, key := range pending {
		for _, name := range varsOf(values[key].(string)) {
			if text, ok := values[name].(string); !ok || !hasVars(text) {
				return true
			}
		}
	}
	return false
}

// resolveValue replaces the vars of text whose value is known. A raw var keeps
// the type of the value it points to
func (c *ConfigRender) resolveValue(text string, values map[string]interface{}) (interface{}, error) {
	if name, ok := rawVar(text); ok {
		if env, ok := c.lookupEnv(name); ok {
			return env, nil
		}
		if value, ok := resolvedValue(values, name); ok {
			return value, nil
		}
		return text, nil
	}

	return fasttemplate.ExecuteFuncStringWithErr(text, startTag, endTag, func(w io.Writer, tag string) (int, error) {
		name := strings.TrimPrefix(tag, rawMark)
		if env, ok := c.lookupEnv(name); ok {
			return w.Write([]byte(env))
		}
		if value, ok := resolvedValue(values, name); ok {
			return fmt.Fprint(w, value)
		}
		return w.Write([]byte(startTag + tag + endTag))
	})
}

func (c *ConfigRender) missingVars(values map[string]interface{}) []string {
	seen := make(map[string]struct{})
	var missing []string
	for _, value := range values {
		text, ok := value.(string)
		if !ok {
			continue
		}
		for _, name := range varsOf(text) {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			if _, ok := c.lookupEnv(name); ok {
				continue
			}
			if _, ok := values[name]; !ok {
				missing = append(missing, name)
			}
		}
	}
	sort.Strings(missing)
	return missing
}

func (c *ConfigRender) lookupEnv(name string) (string, bool) {
	return c.LookupEnvFunc(c.EnvironmentPrefix + "_" + strings.ReplaceAll(name, ".", "_"))
}

func resolvedValue(values map[string]interface{}, name string) (interface{}, bool) {
	value, ok := values[name]
	if !ok {
		return nil, false
	}
	if text, isText := value.(string); isText && hasVars(text) {
		return nil, false
	}
	return value, true
}

func rawVar(text string) (string, bool) {
	name, ok := strings.CutPrefix(text, startTag+rawMark)
	if !ok {
		return "", false
	}
	name, ok = strings.CutSuffix(name, endTag)
	if !ok || strings.Contains(name, endTag) {
		return "", false
	}
	return name, true
}

func hasVars(text string) bool {
	return len(varsOf(text)) > 0
}

// varsOf returns the keys referenced by the vars of text
func varsOf(text string) []string {
	var names []string
	fasttemplate.ExecuteFuncString(text, startTag, endTag, func(w io.Writer, tag string) (int, error) {
		names = append(names, strings.TrimPrefix(tag, rawMark))
		return 0, nil
	})
	return names
}

// convertFileToToml re-encodes as TOML a config file written in another format
func convertFileToToml(content string, extension string) (string, error) {
	parser, ok := fileParsers[strings.ToLower(extension)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedConfigFileType, extension)
	}
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider([]byte(content)), parser); err != nil {
		return "", fmt.Errorf("error parsing %s config: %w", extension, err)
	}
	out, err := k.Marshal(toml.Parser())
	if err != nil {
		return "", fmt.Errorf("error encoding %s config as TOML: %w", extension, err)
	}
	log.Debugf("config converted from %s to TOML", extension)
	return string(out), nil
}
