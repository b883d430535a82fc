// Package navigation turns a docs Directory tree into the site's navigation
// Link tree.
//
// BuildDefault derives the tree from the directories: every directory is
// represented by its index page and lists its other pages and subdirectories
// in natural title order. Customize reshapes such a tree with the rule list
// from the project configuration, matching rules to links by URI. Navigation
// ties both together for one site build.
package navigation
