package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-test/deep"
)

func TestParamsConfigParsing(t *testing.T) {
	yaml := `
Params:
  Density: 0.42
  Vzero: 0.05
  Number: 2000
`
	conf := Config{}
	err := Parse([]byte(yaml), &conf)
	if err != nil {
		t.Fatal(err)
	}

	if conf.Params.Density != 0.42 {
		t.Fatal("unexpected density")
	}
	if conf.Params.Vzero != 0.05 {
		t.Fatal("unexpected vzero")
	}
	if conf.Params.Number != 2000 {
		t.Fatal("unexpected number")
	}
}

func TestYamlRoundTrip(t *testing.T) {
	conf := DefaultConfig()
	conf.Slurm.Partition = "gpu"

	p := filepath.Join(t.TempDir(), "simsub.conf.yml")
	if err := ToYamlFile(conf, p); err != nil {
		t.Fatal(err)
	}

	loaded := Config{}
	if err := ParseFile(p, &loaded); err != nil {
		t.Fatal(err)
	}

	if diff := deep.Equal(conf, loaded); diff != nil {
		t.Fatal("config did not survive yaml round trip:", diff)
	}
}

func TestValidate(t *testing.T) {
	conf := DefaultConfig()
	if err := conf.Validate(); err != nil {
		t.Fatal("default config should validate:", err)
	}

	conf.Scheduler = ""
	conf.Params.Density = -1
	err := conf.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
}

func TestDefaultOutputDirFromEnv(t *testing.T) {
	os.Setenv("DATA_DIRECTORY", "/tmp/simsub-data")
	defer os.Unsetenv("DATA_DIRECTORY")

	conf := DefaultConfig()
	if conf.Submit.OutputDir != "/tmp/simsub-data" {
		t.Fatal("unexpected output dir", conf.Submit.OutputDir)
	}
}
