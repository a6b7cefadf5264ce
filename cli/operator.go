package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	pb "merkletree/api/tree"
)

var (
	buildCmd = &cobra.Command{
		Use:   "build [BLOCK...]",
		Short: "Rebuild the server tree from the given blocks and print the root digest",
		RunE: func(cmd *cobra.Command, args []string) error {
			blocks := make([][]byte, len(args))
			for i, arg := range args {
				blocks[i] = []byte(arg)
			}

			ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
			defer cancel()

			root, err := Client().Build(ctx, &pb.Blocks{Blocks: blocks})
			if err == nil {
				// digests are already hex text
				fmt.Println(string(root.Hash))
			}

			return err
		},
	}

	insertCmd = &cobra.Command{
		Use:   "insert BLOCK",
		Short: "Insert one block into the server tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
			defer cancel()

			_, err := Client().Insert(ctx, &pb.Block{Data: []byte(args[0])})
			return err
		},
	}

	containsCmd = &cobra.Command{
		Use:   "contains BLOCK",
		Short: "Check whether a block is a member of the server tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
			defer cancel()

			member, err := Client().Contains(ctx, &pb.Block{Data: []byte(args[0])})
			if err == nil {
				fmt.Println(member.Present)
			}

			return err
		},
	}

	digestCmd = &cobra.Command{
		Use:   "digest",
		Short: "Print the root digest of the server tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
			defer cancel()

			digest, err := Client().Digest(ctx, &pb.Empty{})
			if err == nil {
				fmt.Println(string(digest.Hash))
			}

			return err
		},
	}
)
