package logger

import (
	"bytes"
	"errors"
	"testing"
)

func TestLog(t *testing.T) {
	l := New("foons", "basearg", 1)
	c := DefaultConfig()
	c.Formatter = "json"
	c.JSONFormat.DisableTimestamp = true
	l.Configure(c)

	var b bytes.Buffer
	l.SetOutput(&b)
	l.Info("test")

	expect := `{"basearg":1,"level":"info","msg":"test","ns":"foons"}` + "\n"
	if b.String() != expect {
		t.Fatal("unexpected log:", b.String())
	}
}

func TestErrorFieldLog(t *testing.T) {
	l := New("foons", "basearg", 1)
	c := DefaultConfig()
	c.Formatter = "json"
	c.JSONFormat.DisableTimestamp = true
	l.Configure(c)

	var b bytes.Buffer
	l.SetOutput(&b)

	err := errors.New("fooerr")
	l.Info("test", err)

	expect := `{"basearg":1,"error":"fooerr","level":"info","msg":"test","ns":"foons"}` + "\n"
	if b.String() != expect {
		t.Fatal("unexpected log:", b.String())
	}
}

func TestGlobalLog(t *testing.T) {
	c := DefaultConfig()
	c.Formatter = "json"
	c.JSONFormat.DisableTimestamp = true
	Configure(c)

	var b bytes.Buffer
	SetOutput(&b)
	Info("test")

	expect := `{"level":"info","msg":"test","ns":"simsub"}` + "\n"
	if b.String() != expect {
		t.Fatal("unexpected log:", b.String())
	}
}

func TestFormatNilField(t *testing.T) {
	c := DebugConfig()
	tf := &textFormatter{
		c.TextFormat,
		jsonFormatter{
			conf: c.JSONFormat,
		},
	}

	var nv *bytes.Buffer
	l := New("TEST", "nil value", nv)
	l.SetFormatter(tf)
	l.Discard()
	l.Info("nil field doesn't panic")
}
