package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internalconfig "github.com/smykla-labs/piklish/internal/config"
	"github.com/smykla-labs/piklish/pkg/lint"
)

var _ = Describe("KoanfLoader", func() {
	var (
		homeDir string
		workDir string
		loader  *internalconfig.KoanfLoader
	)

	writeConfig := func(path, content string) {
		GinkgoHelper()
		Expect(os.MkdirAll(filepath.Dir(path), 0o700)).To(Succeed())
		Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())
	}

	BeforeEach(func() {
		homeDir = GinkgoT().TempDir()
		workDir = GinkgoT().TempDir()
		loader = internalconfig.NewKoanfLoaderWithDirs(homeDir, workDir)
	})

	Describe("defaults", func() {
		It("loads the built-in defaults when no file exists", func() {
			cfg, err := loader.Load(nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.Threshold).NotTo(BeNil())
			Expect(*cfg.Threshold).To(Equal(lint.DefaultThreshold))
			Expect(cfg.IsQuiet()).To(BeFalse())
			Expect(cfg.Severity.Wip).To(Equal(lint.SeverityError))
			Expect(cfg.Severity.Reference).To(Equal(lint.SeverityInfo))
		})

		It("converts cleanly into an engine config", func() {
			cfg, err := loader.Load(nil)
			Expect(err).NotTo(HaveOccurred())

			engine, err := cfg.ToLint()
			Expect(err).NotTo(HaveOccurred())
			Expect(engine.Threshold).To(Equal(lint.DefaultThreshold))
			Expect(engine.GetSeverity(lint.WipCommit)).To(Equal(lint.SeverityError))
		})
	})

	Describe("global config", func() {
		It("overrides defaults", func() {
			writeConfig(loader.GlobalConfigPath(), "threshold = 50\nstrict = true\n")

			cfg, err := loader.Load(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(*cfg.Threshold).To(Equal(50))
			Expect(cfg.IsStrict()).To(BeTrue())
		})
	})

	Describe("project config", func() {
		It("overrides the global config", func() {
			writeConfig(loader.GlobalConfigPath(), "threshold = 50\n")
			writeConfig(filepath.Join(workDir, ".piklish", "config.toml"), "threshold = 10\n")

			cfg, err := loader.Load(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(*cfg.Threshold).To(Equal(10))
		})

		It("falls back to piklish.toml", func() {
			writeConfig(filepath.Join(workDir, "piklish.toml"), "quiet = true\n")

			cfg, err := loader.Load(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.IsQuiet()).To(BeTrue())
		})

		It("is discovered from a nested working directory", func() {
			writeConfig(filepath.Join(workDir, ".piklish", "config.toml"), "threshold = 15\n")

			nested := filepath.Join(workDir, "src", "pkg")
			Expect(os.MkdirAll(nested, 0o700)).To(Succeed())

			nestedLoader := internalconfig.NewKoanfLoaderWithDirs(homeDir, nested)

			cfg, err := nestedLoader.Load(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(*cfg.Threshold).To(Equal(15))
			Expect(nestedLoader.HasProjectConfig()).To(BeTrue())
		})

		It("prefers a nearby piklish.toml over a parent .piklish/config.toml", func() {
			writeConfig(filepath.Join(workDir, ".piklish", "config.toml"), "threshold = 15\n")

			nested := filepath.Join(workDir, "sub")
			writeConfig(filepath.Join(nested, "piklish.toml"), "threshold = 25\n")

			nestedLoader := internalconfig.NewKoanfLoaderWithDirs(homeDir, nested)

			cfg, err := nestedLoader.Load(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(*cfg.Threshold).To(Equal(25))
		})

		It("prefers .piklish/config.toml over piklish.toml", func() {
			writeConfig(filepath.Join(workDir, ".piklish", "config.toml"), "threshold = 11\n")
			writeConfig(filepath.Join(workDir, "piklish.toml"), "threshold = 22\n")

			cfg, err := loader.Load(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(*cfg.Threshold).To(Equal(11))
		})

		It("parses the full document", func() {
			writeConfig(filepath.Join(workDir, "piklish.toml"), `
threshold = 40
branches = ["main", "feature/**"]
disable = ["imperative"]

[checks]
reference = false

[severity]
wip = "warning"
short = "error"
`)

			cfg, err := loader.Load(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Branches).To(Equal([]string{"main", "feature/**"}))
			Expect(cfg.Disable).To(Equal([]string{"imperative"}))
			Expect(*cfg.Checks.Reference).To(BeFalse())
			Expect(cfg.Severity.Wip).To(Equal(lint.SeverityWarning))
			Expect(cfg.Severity.Short).To(Equal(lint.SeverityError))

			engine, err := cfg.ToLint()
			Expect(err).NotTo(HaveOccurred())
			Expect(engine.Threshold).To(Equal(40))
			Expect(engine.RequireIssueRef).To(BeFalse())
			Expect(engine.CheckImperative).To(BeFalse())
			Expect(engine.GetSeverity(lint.WipCommit)).To(Equal(lint.SeverityWarning))
		})

		It("rejects invalid severity names", func() {
			writeConfig(filepath.Join(workDir, "piklish.toml"), "[severity]\nwip = \"fatal\"\n")

			_, err := loader.Load(nil)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("fatal"))
		})

		It("rejects world-writable files", func() {
			path := filepath.Join(workDir, "piklish.toml")
			writeConfig(path, "threshold = 5\n")
			Expect(os.Chmod(path, 0o666)).To(Succeed())

			_, err := loader.Load(nil)
			Expect(err).To(MatchError(internalconfig.ErrInvalidPermissions))
		})
	})

	Describe("environment variables", func() {
		It("override file sources", func() {
			writeConfig(filepath.Join(workDir, "piklish.toml"), "threshold = 40\n")
			GinkgoT().Setenv("PIKLISH_THRESHOLD", "77")

			cfg, err := loader.Load(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(*cfg.Threshold).To(Equal(77))
		})

		It("reach nested keys", func() {
			GinkgoT().Setenv("PIKLISH_SEVERITY_WIP", "ignore")

			cfg, err := loader.Load(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Severity.Wip).To(Equal(lint.SeverityIgnore))
		})

		It("parse list values", func() {
			GinkgoT().Setenv("PIKLISH_BRANCHES", "main,develop")

			cfg, err := loader.Load(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Branches).To(Equal([]string{"main", "develop"}))
		})
	})

	Describe("flags", func() {
		It("beat every other source", func() {
			writeConfig(filepath.Join(workDir, "piklish.toml"), "threshold = 40\n")
			GinkgoT().Setenv("PIKLISH_THRESHOLD", "77")

			cfg, err := loader.Load(map[string]any{"threshold": 3})
			Expect(err).NotTo(HaveOccurred())
			Expect(*cfg.Threshold).To(Equal(3))
		})
	})

	Describe("presence checks", func() {
		It("reports missing configs", func() {
			Expect(loader.HasGlobalConfig()).To(BeFalse())
			Expect(loader.HasProjectConfig()).To(BeFalse())
		})

		It("reports existing configs", func() {
			writeConfig(loader.GlobalConfigPath(), "")
			writeConfig(filepath.Join(workDir, "piklish.toml"), "")

			Expect(loader.HasGlobalConfig()).To(BeTrue())
			Expect(loader.HasProjectConfig()).To(BeTrue())
		})
	})
})
