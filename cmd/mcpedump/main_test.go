package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Versifine/mcpewire/internal/config"
	"github.com/Versifine/mcpewire/internal/dump"
	"github.com/Versifine/mcpewire/internal/protocol"
)

func TestRunDecodesItem(t *testing.T) {
	cfg := config.Default()
	var out bytes.Buffer
	if err := run(cfg, []string{"a8 04 82 28 00 00"}, strings.NewReader(""), &out); err != nil {
		t.Fatalf("run() 返回错误: %v", err)
	}
	got := out.String()
	for _, want := range []string{"id: 276", "name: diamond_sword", "count: 1", "kind: damage", "value: 10"} {
		if !strings.Contains(got, want) {
			t.Errorf("输出缺少 %q:\n%s", want, got)
		}
	}
}

func TestRunReadsStdinAll(t *testing.T) {
	cfg := config.Default()
	cfg.Dump.Kind = "varint"
	cfg.Dump.All = true
	var out bytes.Buffer
	if err := run(cfg, nil, strings.NewReader("02 03\n"), &out); err != nil {
		t.Fatalf("run() 返回错误: %v", err)
	}
	if got := out.String(); got != "1\n---\n-2\n" {
		t.Errorf("输出 = %q", got)
	}
}

func TestRunVerify(t *testing.T) {
	cfg := config.Default()
	cfg.Dump.Kind = "string"
	cfg.Dump.Verify = true
	var out bytes.Buffer
	if err := run(cfg, []string{"03 61 62 63"}, nil, &out); err != nil {
		t.Fatalf("run() 返回错误: %v", err)
	}
	got := out.String()
	for _, want := range []string{"03616263", "match: true", "exact: true", "value: abc"} {
		if !strings.Contains(got, want) {
			t.Errorf("输出缺少 %q:\n%s", want, got)
		}
	}
}

func TestRunCustomRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")
	if err := os.WriteFile(path, []byte("items:\n  - {id: 700, name: custom_gem}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Items.Registry = path

	var raw protocol.Buffer
	protocol.WriteVarint32(&raw, 700)
	protocol.WriteVarint32(&raw, 5)
	protocol.WriteUint16LE(&raw, 0)
	input := hex.EncodeToString(raw.Bytes())

	var out bytes.Buffer
	if err := run(cfg, []string{input}, nil, &out); err != nil {
		t.Fatalf("run() 返回错误: %v", err)
	}
	if !strings.Contains(out.String(), "name: custom_gem") || !strings.Contains(out.String(), "count: 5") {
		t.Errorf("输出 = %s", out.String())
	}

	// 自定义表中没有钻石剑
	err := run(cfg, []string{"a8 04 82 28 00 00"}, nil, &bytes.Buffer{})
	if !errors.Is(err, protocol.ErrUnknownItemType) {
		t.Errorf("期望 ErrUnknownItemType, 实际: %v", err)
	}
}

func TestRunErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Dump.Kind = "nbt"
	if err := run(cfg, []string{"00"}, nil, &bytes.Buffer{}); !errors.Is(err, dump.ErrUnknownKind) {
		t.Errorf("期望 ErrUnknownKind, 实际: %v", err)
	}

	cfg = config.Default()
	if err := run(cfg, []string{"zz"}, nil, &bytes.Buffer{}); err == nil {
		t.Error("非法十六进制应返回错误")
	}

	cfg.Items.Registry = filepath.Join(t.TempDir(), "missing.yaml")
	if err := run(cfg, []string{"00"}, nil, &bytes.Buffer{}); !os.IsNotExist(err) {
		t.Errorf("期望文件不存在错误, 实际: %v", err)
	}
}
