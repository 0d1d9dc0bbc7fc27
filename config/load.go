package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

// LoadWithEnv reads <name>.yaml from the working directory or one of dirs
// (relative to it), then overlays environment variables. SESSION_MAXAGE
// lands on session.maxAge because env keys are matched against the keys
// the file already defines.
func LoadWithEnv[T any](name string, dirs ...string) (*T, error) {
	path, err := findConfigFile(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	fromFile := k.Raw()
	envProvider := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, fromFile), value
		},
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, "overlay environment")
	}

	out := new(T)
	decoder := &mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		MatchName:        strings.EqualFold,
	}
	if err := k.UnmarshalWithConf("", out, koanf.UnmarshalConf{DecoderConfig: decoder}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return out, nil
}

func findConfigFile(filename string, dirs []string) (string, error) {
	candidates := []string{filename}
	if len(dirs) > 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "resolve working directory")
		}
		for _, dir := range dirs {
			candidates = append(candidates, filepath.Join(pwd, dir, filename))
		}
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found (looked in %s)", filename, strings.Join(candidates, ", "))
}

// canonicalizeEnvKey maps POSTGRES_MASTER_USERNAME to postgres.master.userName
// by walking the loaded file tree. Segments unknown to the file are kept
// lower-cased.
func canonicalizeEnvKey(rawKey string, tree map[string]any) string {
	segments := strings.FieldsFunc(strings.ToLower(rawKey), func(r rune) bool { return r == '_' })
	path := make([]string, 0, len(segments))

	node := tree
	for _, segment := range segments {
		key, child := matchKey(node, segment)
		path = append(path, key)
		node = child
	}

	return strings.Join(path, ".")
}

func matchKey(node map[string]any, segment string) (string, map[string]any) {
	want := alnum(segment)
	for key, value := range node {
		if strings.EqualFold(alnum(key), want) {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return segment, nil
}

func alnum(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}

		return -1
	}, s)
}

// replicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD}
// for n = 0, 1, ... until a host or port is missing.
func replicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for n := 0; ; n++ {
		field := func(name string) string {
			return os.Getenv("POSTGRES_REPLICAS_" + strconv.Itoa(n) + "_" + name)
		}

		host, port := field("HOST"), field("PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: field("USERNAME"),
			Password: field("PASSWORD"),
		})
	}
}
