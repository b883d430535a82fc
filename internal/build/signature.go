package build

import (
	"crypto/sha256"
	"encoding/hex"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/docs"
)

// Signature combines the docs tree signature with the configuration that
// shapes the navigation. Two builds with equal signatures produce the same
// navigation.
func Signature(cfg *config.Config, tree *docs.Directory) (string, error) {
	h := sha256.New()
	cfgData, err := yaml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	h.Write(cfgData)
	// omitempty hides the difference between no rule list and an empty one.
	if cfg.HasNavigation() {
		h.Write([]byte("navigation"))
	}
	h.Write([]byte{0})
	h.Write([]byte(tree.Signature()))
	return hex.EncodeToString(h.Sum(nil)), nil
}
