package monolens

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/monolens/pkg/deps"
	"github.com/arthur-debert/monolens/pkg/paths"
	"github.com/arthur-debert/monolens/pkg/symlinks"
)

func newListCmd(rootDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Long:  MsgListLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(*rootDir)
			if err != nil {
				return err
			}

			packages := e.registry.Get()
			if len(packages) == 0 {
				cmd.Println(MsgNoPackages)
				return nil
			}

			for _, p := range packages {
				cmd.Printf("%s\t%s\n", p.Name, p.RelativePath)
			}
			return nil
		},
	}
}

func newDepsCmd(rootDir *string) *cobra.Command {
	var noProduction, noDevelopment, noOptional bool

	cmd := &cobra.Command{
		Use:   "deps <package>",
		Short: MsgDepsShort,
		Long:  MsgDepsLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(*rootDir)
			if err != nil {
				return err
			}

			if _, ok := e.registry.Lookup(args[0]); !ok {
				cmd.Printf(MsgPackageNotFound, args[0])
				return nil
			}

			filter := e.cfg.ClassFilter()
			if noProduction {
				filter.Production = false
			}
			if noDevelopment {
				filter.Development = false
			}
			if noOptional {
				filter.Optional = false
			}

			resolver := deps.NewResolver(e.fs, e.notifier)
			edges := resolver.Resolve(args[0], e.registry.Get(), filter)
			if len(edges) == 0 {
				cmd.Println(MsgNoDeps)
				return nil
			}

			for _, edge := range edges {
				cmd.Printf("%s\t%s\n", edge.Name, edge.RelativePath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noProduction, "no-production", false, "Skip production dependencies")
	cmd.Flags().BoolVar(&noDevelopment, "no-development", false, "Skip development dependencies")
	cmd.Flags().BoolVar(&noOptional, "no-optional", false, "Skip optional dependencies")

	return cmd
}

func newResolveLinkCmd(rootDir *string) *cobra.Command {
	var fromRoot bool

	cmd := &cobra.Command{
		Use:   "resolve-link <path>",
		Short: MsgResolveLinkShort,
		Long:  MsgResolveLinkLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := paths.ValidatePath(args[0]); err != nil {
				return err
			}

			e, err := newEnv(*rootDir)
			if err != nil {
				return err
			}

			resolver := symlinks.NewResolver(e.fs)

			var resolved string
			if fromRoot {
				resolved, err = resolver.ResolveFromRoot(args[0], e.root)
			} else {
				resolved, err = resolver.ResolveChain(args[0])
			}
			if err != nil {
				return fmt.Errorf("cannot resolve %s: %w", args[0], err)
			}

			cmd.Println(resolved)
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromRoot, "from-root", false,
		"Resolve segment-by-segment from the workspace root")

	return cmd
}

func newCheckLinkCmd(rootDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check-link <path>",
		Short: MsgCheckLinkShort,
		Long:  MsgCheckLinkLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := paths.ValidatePath(args[0]); err != nil {
				return err
			}

			e, err := newEnv(*rootDir)
			if err != nil {
				return err
			}

			resolver := symlinks.NewResolver(e.fs)
			found, err := resolver.ContainsLink(args[0], e.root)
			if err != nil {
				return fmt.Errorf("cannot inspect %s: %w", args[0], err)
			}

			cmd.Println(found)
			return nil
		},
	}
}
