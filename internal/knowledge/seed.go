package knowledge

import (
	"os"

	"gopkg.in/yaml.v3"
)

// starterRecords is the built-in first-run knowledge base.
var starterRecords = Base{
	{Question: "hello", Answer: "Hello! How can I help you today?"},
	{Question: "hi", Answer: "Hi there! Ask me anything or type 'help' for commands."},
	{Question: "how are you", Answer: "I'm a bot — always ready to help! How are you?"},
	{Question: "what is your name", Answer: "I'm a simple NLP chatbot created to help you learn."},
	{Question: "help", Answer: "Type your question. Commands: help, show, save, exit, teach: Q => A"},
}

type seedEntry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// starterBase returns the seed for a fresh knowledge file. If a seed file
// exists next to the knowledge file it replaces the built-in set; a
// malformed or empty seed falls back to the built-in records.
func (s *Store) starterBase() Base {
	if s.seedPath == "" {
		return append(Base{}, starterRecords...)
	}

	data, err := os.ReadFile(s.seedPath)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.WithError(err).WithField("path", s.seedPath).Warn("failed to read seed file")
		}
		return append(Base{}, starterRecords...)
	}

	var entries []seedEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		s.logger.WithError(err).WithField("path", s.seedPath).Warn("seed file is not a valid question/answer list")
		return append(Base{}, starterRecords...)
	}

	var base Base
	for _, e := range entries {
		if e.Question == "" || e.Answer == "" {
			continue
		}
		base = append(base, Record{Question: e.Question, Answer: e.Answer})
	}
	if len(base) == 0 {
		s.logger.WithField("path", s.seedPath).Warn("seed file contains no usable entries, using built-in starter set")
		return append(Base{}, starterRecords...)
	}
	return base
}
