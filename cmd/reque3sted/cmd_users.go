package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Mking11/reque3sted/internal/store"
	"github.com/Mking11/reque3sted/internal/types"
)

// cmdTimeout bounds a single CLI store operation, simulated latency
// included.
const cmdTimeout = 30 * time.Second

var (
	setName   string
	setAge    int
	setGender string
)

// getCmd looks up a single user by ID.
var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Look up a user by ID",
	Long: `Looks up a user in the configured store and prints it.

Note: the memory backend starts empty each run; use --backend sqlite
for data that survives between invocations.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q: %w", args[0], err)
		}

		st, closer, err := openConfiguredStore()
		if err != nil {
			return err
		}
		defer closer()

		ctx, cancel := context.WithTimeout(cmd.Context(), cmdTimeout)
		defer cancel()

		start := time.Now()
		u, err := st.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("lookup failed: %w", err)
		}
		logger.Debug("lookup finished",
			zap.Int64("id", id),
			zap.Duration("elapsed", time.Since(start)))

		if u == nil {
			fmt.Printf("no user with id %d\n", id)
			return nil
		}
		printUser(*u)
		return nil
	},
}

// setCmd creates or overwrites a user record.
var setCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Create or overwrite a user record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q: %w", args[0], err)
		}

		st, closer, err := openConfiguredStore()
		if err != nil {
			return err
		}
		defer closer()

		ctx, cancel := context.WithTimeout(cmd.Context(), cmdTimeout)
		defer cancel()

		u := types.User{ID: id, Name: setName, Age: setAge, Gender: setGender}
		if err := st.Insert(ctx, u); err != nil {
			return fmt.Errorf("insert failed: %w", err)
		}
		logger.Info("user stored", zap.Int64("id", id))
		printUser(u)
		return nil
	},
}

// deleteCmd removes a user record.
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q: %w", args[0], err)
		}

		st, closer, err := openConfiguredStore()
		if err != nil {
			return err
		}
		defer closer()

		ctx, cancel := context.WithTimeout(cmd.Context(), cmdTimeout)
		defer cancel()

		if err := st.Delete(ctx, types.User{ID: id}); err != nil {
			return fmt.Errorf("delete failed: %w", err)
		}
		logger.Info("user deleted", zap.Int64("id", id))
		fmt.Printf("deleted user %d (if present)\n", id)
		return nil
	},
}

// seedCmd loads the demo fixtures.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo users into the configured store",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openConfiguredStore()
		if err != nil {
			return err
		}
		defer closer()

		ctx, cancel := context.WithTimeout(cmd.Context(), cmdTimeout)
		defer cancel()

		if err := store.Seed(ctx, st); err != nil {
			return err
		}
		logger.Info("demo users seeded", zap.Int("count", len(store.DemoUsers())))
		fmt.Printf("seeded %d users\n", len(store.DemoUsers()))
		return nil
	},
}

// openConfiguredStore resolves config and opens the selected backend.
func openConfiguredStore() (store.UserStore, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	return openStore(cfg)
}

func printUser(u types.User) {
	fmt.Printf("id:     %d\n", u.ID)
	fmt.Printf("name:   %s\n", u.Name)
	fmt.Printf("age:    %d\n", u.Age)
	fmt.Printf("gender: %s\n", u.Gender)
}

func init() {
	setCmd.Flags().StringVar(&setName, "name", "", "user name")
	setCmd.Flags().IntVar(&setAge, "age", 0, "user age")
	setCmd.Flags().StringVar(&setGender, "gender", "", "user gender")
}
