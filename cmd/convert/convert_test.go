package convert

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeCmd(t *testing.T) {
	var out bytes.Buffer
	EncodeCmd.SetOut(&out)
	EncodeCmd.SetErr(&out)

	if err := EncodeCmd.RunE(EncodeCmd, []string{"512.3"}); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out.String()) != "n5.123" {
		t.Fatal("unexpected output", out.String())
	}
}

func TestEncodeCmdFromEnv(t *testing.T) {
	t.Setenv("VALUE", "0.8")

	var out bytes.Buffer
	EncodeCmd.SetOut(&out)
	EncodeCmd.SetErr(&out)

	if err := EncodeCmd.RunE(EncodeCmd, nil); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out.String()) != "k8.000" {
		t.Fatal("unexpected output", out.String())
	}
}

func TestDecodeCmd(t *testing.T) {
	var out bytes.Buffer
	DecodeCmd.SetOut(&out)
	DecodeCmd.SetErr(&out)

	if err := DecodeCmd.RunE(DecodeCmd, []string{"n5.123"}); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out.String()) != "5.123e+2" {
		t.Fatal("unexpected output", out.String())
	}
}

func TestConvertCmdErrors(t *testing.T) {
	t.Setenv("VALUE", "")
	t.Setenv("CODE", "")

	if err := EncodeCmd.RunE(EncodeCmd, nil); err == nil {
		t.Fatal("expected error for missing value")
	}
	if err := EncodeCmd.RunE(EncodeCmd, []string{"2+2"}); err == nil {
		t.Fatal("expected error for expression input")
	}
	if err := DecodeCmd.RunE(DecodeCmd, []string{"@1.234"}); err == nil {
		t.Fatal("expected error for unknown letter")
	}
}
