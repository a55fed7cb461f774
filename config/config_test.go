package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	"github.com/kardolus/adventure-agent/config"
)

func TestUnitConfig(t *testing.T) {
	spec.Run(t, "Testing configuration", testConfig, spec.Report(report.Terminal{}))
}

func testConfig(t *testing.T, when spec.G, it spec.S) {
	it.Before(func() {
		RegisterTestingT(t)
	})

	when("no config file exists", func() {
		it("falls back to the defaults", func() {
			store := config.New().WithConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))

			cm := config.NewManager(store)

			Expect(cm.Config.Backend).To(Equal("cohere"))
			Expect(cm.Config.Game).To(Equal("foglight"))
			Expect(cm.Config.MaxSteps).To(Equal(40))
			Expect(cm.Config.Seed).To(Equal(42))
		})
	})

	when("a config file exists", func() {
		it("overrides only the fields it sets", func() {
			path := filepath.Join(t.TempDir(), "config.yaml")
			Expect(os.WriteFile(path, []byte("backend: gemini\nmax_steps: 15\n"), 0o644)).To(Succeed())

			cm := config.NewManager(config.New().WithConfigPath(path))

			Expect(cm.Config.Backend).To(Equal("gemini"))
			Expect(cm.Config.MaxSteps).To(Equal(15))
			Expect(cm.Config.Seed).To(Equal(42))
			Expect(cm.Config.Endpoint).To(Equal("http://localhost:8000/mcp"))
		})
	})

	when("environment variables are set", func() {
		it("they win over the file", func() {
			path := filepath.Join(t.TempDir(), "config.yaml")
			Expect(os.WriteFile(path, []byte("max_steps: 15\n"), 0o644)).To(Succeed())

			t.Setenv("ADVENTURE_MAX_STEPS", "99")
			t.Setenv("ADVENTURE_MODEL", "command-r-plus")

			cm := config.NewManager(config.New().WithConfigPath(path)).WithEnvironment()

			Expect(cm.Config.MaxSteps).To(Equal(99))
			Expect(cm.Config.Model).To(Equal("command-r-plus"))
		})
	})

	when("writing the configuration", func() {
		it("round-trips through yaml", func() {
			path := filepath.Join(t.TempDir(), "nested", "config.yaml")
			store := config.New().WithConfigPath(path)

			cfg := store.ReadDefaults()
			cfg.Game = "zork1"
			Expect(store.Write(cfg)).To(Succeed())

			read, err := store.Read()
			Expect(err).NotTo(HaveOccurred())
			Expect(read.Game).To(Equal("zork1"))
			Expect(read.Backend).To(Equal("cohere"))
		})
	})

	when("naming the api key variable", func() {
		it("derives it from the backend", func() {
			store := config.New().WithConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
			cm := config.NewManager(store)

			Expect(cm.APIKeyEnvVarName()).To(Equal("COHERE_API_KEY"))
		})
	})
}
