package main

import (
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"teehistorian-gen/chunks"
)

func newEncodeCmd(a *app) *cobra.Command {
	var (
		stream  bool
		headers map[string]string
		out     string
	)

	cmd := &cobra.Command{
		Use:   "encode NAME [VALUE...]",
		Short: "Encode one chunk and print its teehistorian bytes",
		Long: `Builds the named chunk from values given in field order and prints the
encoded bytes as hex. Values are coerced to the declared field types; an
integer list field takes one argument with the values separated by spaces
or commas.

With --stream the chunk is wrapped into a complete teehistorian stream
(header, chunk, end of stream); --out saves that stream to a file.`,
		Example: `  chunkgen encode Join 7
  chunkgen encode InputNew 0 "1 0 -3"
  chunkgen encode Drop 3 timeout --stream --header game_uuid=abc --out drop.teehistorian`,
		Args: cobra.MinimumNArgs(1),
		Annotations: map[string]string{
			skipConfigAnnotation: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]any, 0, len(args)-1)
			for _, v := range args[1:] {
				values = append(values, v)
			}

			c, err := chunks.New(args[0], values...)
			if err != nil {
				return err
			}

			a.logger.Debug("built chunk", "chunk", c.String())

			if !stream && len(headers) == 0 && out == "" {
				data, err := c.Encode()
				if err != nil {
					return err
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))

				return err
			}

			w, err := streamOf(c, headers)
			if err != nil {
				return err
			}

			if out != "" {
				if err := w.Save(out); err != nil {
					return err
				}

				a.logger.Info("saved stream", "path", out, "bytes", w.Size())

				return nil
			}

			data, err := w.Bytes()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))

			return err
		},
	}

	cmd.Flags().BoolVar(&stream, "stream", false, "wrap the chunk into a complete stream")
	cmd.Flags().StringToStringVar(&headers, "header", nil, "stream header entry key=value (implies --stream)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "save the stream to a file (implies --stream)")

	return cmd
}

func streamOf(c chunks.Chunk, headers map[string]string) (*chunks.Writer, error) {
	w := chunks.NewWriter()

	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		if err := w.SetHeader(k, headers[k]); err != nil {
			return nil, err
		}
	}

	if err := w.Write(c); err != nil {
		return nil, err
	}

	return w, w.Close()
}
