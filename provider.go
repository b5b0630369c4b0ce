package lari

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Provider names a storage backend.
type Provider string

const (
	SQLiteProvider  Provider = "sqlite"
	MySQLProvider   Provider = "mysql"
	MongoDBProvider Provider = "mongodb"
	MemoryProvider  Provider = "memory"
	EmptyProvider   Provider = ""
)

func ConvertToProviderFromString(str string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "sqlite", "sqlite3":
		return SQLiteProvider, nil
	case "mysql":
		return MySQLProvider, nil
	case "mongodb", "mongo":
		return MongoDBProvider, nil
	case "memory":
		return MemoryProvider, nil
	}

	return EmptyProvider, fmt.Errorf("value %s is not valid Provider", str)
}

func (p *Provider) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}

	provider, err := ConvertToProviderFromString(str)

	if err != nil {
		return err
	}

	*p = provider

	return nil
}

func (p Provider) MarshalYAML() (interface{}, error) {
	return string(p), nil
}
