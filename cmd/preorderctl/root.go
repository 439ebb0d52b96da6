// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	loader     Loader
}

func newRootCommand(loader Loader) *cobra.Command {
	opts := &rootOptions{loader: loader}
	cmd := &cobra.Command{
		Use:           "preorderctl",
		Short:         "Outils d'exploitation des precommandes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "config/config.yaml", "chemin du fichier de configuration")

	cmd.AddCommand(newRemindCommand(opts))
	cmd.AddCommand(newCampaignSweepCommand(opts, "supplier-notify",
		"Previent les clients que la commande fournisseur est partie", sweepSupplier))
	cmd.AddCommand(newCampaignSweepCommand(opts, "stock-received",
		"Previent les clients que le stock est arrive", sweepStock))
	cmd.AddCommand(newAdminCommand(opts))
	return cmd
}

func newRemindCommand(opts *rootOptions) *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Envoie les rappels J-3, J-2, J-1 de la precommande ouverte",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if at != "" {
				t, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("--at invalide: %w", err)
				}
				now = t
			}
			svc, err := opts.loader.SweepService(opts.configPath)
			if err != nil {
				return err
			}
			res, err := svc.RunReminders(cmd.Context(), now)
			if err != nil {
				return err
			}
			if res.DaysLeft == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "aucune precommande ouverte")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "J-%d: %d rappel(s) envoye(s)\n", *res.DaysLeft, res.SentCount)
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "heure de reference RFC3339, maintenant par defaut")
	return cmd
}

type sweepKind int

const (
	sweepSupplier sweepKind = iota
	sweepStock
)

func newCampaignSweepCommand(opts *rootOptions, use, short string, kind sweepKind) *cobra.Command {
	var campaignId int64
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if campaignId <= 0 {
				return fmt.Errorf("--campaign doit etre positif")
			}
			svc, err := opts.loader.SweepService(opts.configPath)
			if err != nil {
				return err
			}
			var sent int
			switch kind {
			case sweepSupplier:
				sent, err = svc.NotifySupplier(cmd.Context(), campaignId)
			default:
				sent, err = svc.NotifyStockReceived(cmd.Context(), campaignId)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "precommande %d: %d email(s) envoye(s)\n", campaignId, sent)
			return nil
		},
	}
	cmd.Flags().Int64Var(&campaignId, "campaign", 0, "identifiant de la precommande")
	_ = cmd.MarkFlagRequired("campaign")
	return cmd
}

func newAdminCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Gestion des administrateurs",
	}
	var email, password string
	create := &cobra.Command{
		Use:   "create",
		Short: "Cree un administrateur",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.loader.AdminService(opts.configPath)
			if err != nil {
				return err
			}
			id, err := svc.Create(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "administrateur %d cree\n", id)
			return nil
		},
	}
	create.Flags().StringVar(&email, "email", "", "email de connexion")
	create.Flags().StringVar(&password, "password", "", "mot de passe")
	_ = create.MarkFlagRequired("email")
	_ = create.MarkFlagRequired("password")
	cmd.AddCommand(create)
	return cmd
}
