package config

import (
	"testing"
)

func TestGetFloat(t *testing.T) {
	t.Setenv("TEST_DENSITY", "0.65")
	v, err := GetFloat("TEST_DENSITY", 0.8)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0.65 {
		t.Fatal("unexpected value", v)
	}

	v, err = GetFloat("TEST_UNSET_DENSITY", 0.8)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0.8 {
		t.Fatal("expected default, got", v)
	}
}

func TestGetFloatRejectsExpressions(t *testing.T) {
	// The old workflow evaluated env vars as expressions. Values must
	// now be plain numeric literals.
	t.Setenv("TEST_DENSITY", "0.5+0.3")
	if _, err := GetFloat("TEST_DENSITY", 0.8); err == nil {
		t.Fatal("expected error for expression input")
	}

	t.Setenv("TEST_DENSITY", "__import__('os')")
	if _, err := GetFloat("TEST_DENSITY", 0.8); err == nil {
		t.Fatal("expected error for code input")
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("TEST_DRY_RUN", "1")
	v, err := GetBool("TEST_DRY_RUN", false)
	if err != nil {
		t.Fatal(err)
	}
	if !v {
		t.Fatal("expected true")
	}

	v, err = GetBool("TEST_UNSET_DRY_RUN", false)
	if err != nil {
		t.Fatal(err)
	}
	if v {
		t.Fatal("expected default false")
	}

	t.Setenv("TEST_DRY_RUN", "yes please")
	if _, err := GetBool("TEST_DRY_RUN", false); err == nil {
		t.Fatal("expected error for malformed boolean")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DENSITY", "0.65")
	t.Setenv("VZERO", "1e-3")
	t.Setenv("NUMBER", "4000")
	t.Setenv("CPUS", "4")
	t.Setenv("PARTITION", "batch")

	conf := DefaultConfig()
	if err := FromEnv(&conf); err != nil {
		t.Fatal(err)
	}

	if conf.Params.Density != 0.65 {
		t.Fatal("unexpected density", conf.Params.Density)
	}
	if conf.Params.Vzero != 1e-3 {
		t.Fatal("unexpected vzero", conf.Params.Vzero)
	}
	if conf.Params.Number != 4000 {
		t.Fatal("unexpected number", conf.Params.Number)
	}
	if conf.Params.Cpus != 4 {
		t.Fatal("unexpected cpus", conf.Params.Cpus)
	}
	if conf.Slurm.Partition != "batch" {
		t.Fatal("unexpected partition", conf.Slurm.Partition)
	}
}

func TestFromEnvMalformed(t *testing.T) {
	t.Setenv("DENSITY", "not-a-number")
	t.Setenv("CPUS", "four")

	conf := DefaultConfig()
	err := FromEnv(&conf)
	if err == nil {
		t.Fatal("expected errors for malformed env values")
	}
}
