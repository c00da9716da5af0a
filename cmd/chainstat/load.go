package main

import (
	"fmt"
	"io"

	"github.com/gosuri/uilive"
	"github.com/webbmaffian/go-chain/hashkey"
	"github.com/webbmaffian/go-chain/internal/mmfile"
	"github.com/webbmaffian/go-chain/internal/wordcount"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var encodings = map[string]encoding.Encoding{
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
}

func decoderFor(name string) (*encoding.Decoder, error) {
	switch name {
	case "", "utf-8", "utf8":
		return nil, nil
	}

	enc, ok := encodings[name]

	if !ok {
		return nil, fmt.Errorf("unknown encoding %q", name)
	}

	return enc.NewDecoder(), nil
}

// loadFiles counts the words of every file into a new counter. With progress
// set, running totals are rendered live to that writer.
func loadFiles(files []string, progress io.Writer) (c *wordcount.Counter, err error) {
	hash, err := hashkey.ByName(cfg.Hash)

	if err != nil {
		return
	}

	dec, err := decoderFor(cfg.Encoding)

	if err != nil {
		return
	}

	if c, err = wordcount.New(cfg.Buckets, hash); err != nil {
		return
	}

	var live *uilive.Writer
	var filesLine, wordsLine, tableLine io.Writer

	if progress != nil {
		live = uilive.New()
		live.Out = progress
		filesLine = live.Newline()
		wordsLine = live.Newline()
		tableLine = live.Newline()

		live.Start()
		defer live.Stop()
	}

	for i, path := range files {
		if err = loadFile(c, path, dec); err != nil {
			c.Close()
			return nil, err
		}

		if live != nil {
			s := c.Stats()
			fmt.Fprintf(filesLine, "Files: %d/%d\n", i+1, len(files))
			fmt.Fprintf(wordsLine, "Words: %d (%d distinct)\n", s.Total, s.Words)
			fmt.Fprintf(tableLine, "Buckets: %d, load factor %.2f\n", s.Buckets, s.LoadFactor)
		}
	}

	return
}

func loadFile(c *wordcount.Counter, path string, dec *encoding.Decoder) (err error) {
	f, err := mmfile.Open(path)

	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	defer f.Close()

	text := f.Bytes()

	if dec != nil {
		if text, err = dec.Bytes(text); err != nil {
			return fmt.Errorf("failed to decode %s as %s: %w", path, cfg.Encoding, err)
		}
	}

	buckets := c.Stats().Buckets
	n := c.AddText(text)

	logger.Info("counted file",
		zap.String("path", path),
		zap.Int("bytes", f.Len()),
		zap.Int("words", n),
	)

	if s := c.Stats(); s.Buckets != buckets {
		logger.Debug("table grew",
			zap.Int("from", buckets),
			zap.Int("to", s.Buckets),
			zap.Int("keys", s.Keys),
		)
	}

	return
}
