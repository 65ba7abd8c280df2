package i18n

//go:generate mockgen -package=mocks -destination=mocks/mock_translator.go github.com/guildboard/blackboard/internal/i18n Translator

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLang is the fallback language for unknown or missing keys
const DefaultLang = "en"

// Translator resolves dotted message keys to localized strings
type Translator interface {
	// T returns the message for key in lang, interpolating {var}
	// placeholders from vars. Unknown langs fall back to English;
	// unknown keys return the key itself.
	T(lang, key string, vars map[string]string) string

	// Languages lists the loaded language codes
	Languages() []string
}

// Config holds configuration for the translation bundle
type Config struct {
	// OverrideDir, when set, is watched for <lang>.yaml files whose
	// entries shadow the embedded locales; optional
	OverrideDir string

	// Logger
	Logger *zap.Logger
}

// Bundle is a Translator backed by embedded locale files plus optional
// on-disk overrides that reload on change
type Bundle struct {
	logger  *zap.Logger
	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup

	mu        sync.RWMutex
	embedded  map[string]map[string]string
	overrides map[string]map[string]string
}

// New creates a translation bundle from the embedded locales
func New(cfg *Config) (*Bundle, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	b := &Bundle{
		logger:    cfg.Logger,
		done:      make(chan struct{}),
		embedded:  make(map[string]map[string]string),
		overrides: make(map[string]map[string]string),
	}

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded locales: %w", err)
	}

	for _, entry := range entries {
		lang := strings.TrimSuffix(entry.Name(), ".yaml")
		data, err := localeFS.ReadFile("locales/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %s: %w", lang, err)
		}
		flat, err := parseLocale(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse locale %s: %w", lang, err)
		}
		b.embedded[lang] = flat
	}

	if _, ok := b.embedded[DefaultLang]; !ok {
		return nil, fmt.Errorf("embedded locales missing %q", DefaultLang)
	}

	if cfg.OverrideDir != "" {
		if err := b.loadOverrides(cfg.OverrideDir); err != nil {
			return nil, err
		}
		if err := b.watch(cfg.OverrideDir); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Close stops the override watcher, if any
func (b *Bundle) Close() error {
	if b.watcher == nil {
		return nil
	}
	close(b.done)
	err := b.watcher.Close()
	b.wg.Wait()
	return err
}

func (b *Bundle) T(lang, key string, vars map[string]string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if msg, ok := b.lookup(lang, key); ok {
		return interpolate(msg, vars)
	}
	if lang != DefaultLang {
		if msg, ok := b.lookup(DefaultLang, key); ok {
			return interpolate(msg, vars)
		}
	}
	return key
}

func (b *Bundle) Languages() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	langs := make([]string, 0, len(b.embedded))
	for lang := range b.embedded {
		langs = append(langs, lang)
	}
	return langs
}

// lookup checks overrides before embedded messages; callers hold mu
func (b *Bundle) lookup(lang, key string) (string, bool) {
	if flat, ok := b.overrides[lang]; ok {
		if msg, ok := flat[key]; ok {
			return msg, true
		}
	}
	if flat, ok := b.embedded[lang]; ok {
		if msg, ok := flat[key]; ok {
			return msg, true
		}
	}
	return "", false
}

func (b *Bundle) loadOverrides(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read override dir: %w", err)
	}

	fresh := make(map[string]map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		lang := strings.TrimSuffix(entry.Name(), ".yaml")
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			b.logger.Warn("skipping unreadable locale override",
				zap.String("file", entry.Name()),
				zap.Error(err))
			continue
		}
		flat, err := parseLocale(data)
		if err != nil {
			b.logger.Warn("skipping malformed locale override",
				zap.String("file", entry.Name()),
				zap.Error(err))
			continue
		}
		fresh[lang] = flat
	}

	b.mu.Lock()
	b.overrides = fresh
	b.mu.Unlock()
	return nil
}

func (b *Bundle) watch(dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create locale watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch locale dir: %w", err)
	}
	b.watcher = watcher

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for {
			select {
			case <-b.done:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				if err := b.loadOverrides(dir); err != nil {
					b.logger.Warn("locale override reload failed", zap.Error(err))
					continue
				}
				b.logger.Info("locale overrides reloaded",
					zap.String("trigger", event.Name))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				b.logger.Warn("locale watcher error", zap.Error(err))
			}
		}
	}()

	return nil
}

// parseLocale flattens nested YAML mappings into dotted keys
func parseLocale(data []byte) (map[string]string, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}

	flat := make(map[string]string)
	flatten("", tree, flat)
	return flat, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprintf("%v", val)
		}
	}
}

// interpolate substitutes {name} placeholders; unknown placeholders
// are left intact so mistakes stay visible
func interpolate(msg string, vars map[string]string) string {
	if len(vars) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	for name, value := range vars {
		msg = strings.ReplaceAll(msg, "{"+name+"}", value)
	}
	return msg
}
