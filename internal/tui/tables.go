// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/boasync/boa-sync/internal/utils"
	"github.com/boasync/boa-sync/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const timeLayout = "2006-01-02 15:04"

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...)
}

// ItemsTable renders linked items with their access tokens masked.
func ItemsTable(items []models.Item) string {
	if len(items) == 0 {
		return helpStyle.Render("no linked items")
	}

	t := newTable("ITEM ID", "INSTITUTION", "USER", "STATUS", "LAST SYNC", "ACCESS TOKEN")
	for _, it := range items {
		t.Row(
			it.ItemID,
			orDash(it.InstitutionName),
			orDash(it.UserID),
			string(it.Status),
			formatTime(it.LastSyncAt),
			utils.MaskSecret(it.AccessToken),
		)
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		if col == 3 && row >= 0 && row < len(items) {
			return statusStyle(string(items[row].Status))
		}
		return cellStyle
	})
	return t.Render()
}

// StatusReport renders the local record next to the provider's view of it.
func StatusReport(report models.ItemStatusReport) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Item " + report.Item.ItemID))
	b.WriteString("\n")
	field(&b, "Institution", orDash(report.Item.InstitutionName))
	field(&b, "User", orDash(report.Item.UserID))
	field(&b, "Access token", utils.MaskSecret(report.Item.AccessToken))
	field(&b, "Status", statusStyle(string(report.Item.Status)).Render(string(report.Item.Status)))
	field(&b, "Last sync", formatTime(report.Item.LastSyncAt))

	provider := report.Provider
	if provider.ConsentExpirationTime != nil {
		field(&b, "Consent expires", formatTime(provider.ConsentExpirationTime))
	}
	if len(provider.BilledProducts) > 0 {
		field(&b, "Products", strings.Join(provider.BilledProducts, ", "))
	}
	if provider.Error != nil {
		field(&b, "Provider error", errorStyle.Render(provider.Error.ErrorCode))
		if msg := provider.Error.DisplayMessage; msg != "" {
			field(&b, "", msg)
		} else if provider.Error.ErrorMessage != "" {
			field(&b, "", provider.Error.ErrorMessage)
		}
	}
	if report.Changed {
		b.WriteString(helpStyle.Render("local status updated from provider"))
		b.WriteString("\n")
	}
	return b.String()
}

// SyncResultsTable renders one row per synced item.
func SyncResultsTable(results []models.SyncResult) string {
	if len(results) == 0 {
		return helpStyle.Render("nothing to sync")
	}

	t := newTable("ITEM ID", "STATUS", "PAGES", "ADDED", "MODIFIED", "REMOVED", "ACCOUNTS", "ERROR")
	for _, r := range results {
		errText := "-"
		if r.Err != nil {
			errText = r.Err.Error()
		}
		t.Row(
			r.ItemID,
			string(r.Status),
			strconv.Itoa(r.Pages),
			strconv.Itoa(r.Added),
			strconv.Itoa(r.Modified),
			strconv.Itoa(r.Removed),
			strconv.Itoa(r.Accounts),
			errText,
		)
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		if row < 0 || row >= len(results) {
			return cellStyle
		}
		switch {
		case col == 1:
			return statusStyle(string(results[row].Status))
		case col == 7 && results[row].Err != nil:
			return cellStyle.Foreground(lipgloss.Color("9"))
		}
		return cellStyle
	})
	return t.Render()
}

// ReconcileReport renders the matched pairs, both sides' leftovers and the
// totals of a reconciliation.
func ReconcileReport(report models.ReconcileReport) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Reconciliation for item " + report.ItemID))
	b.WriteString("\n")
	if len(report.AccountIDs) > 0 {
		field(&b, "Accounts", strings.Join(report.AccountIDs, ", "))
	}
	field(&b, "Matched", strconv.Itoa(len(report.Matched)))
	field(&b, "Statement only", strconv.Itoa(len(report.StatementOnly)))
	field(&b, "Provider only", strconv.Itoa(len(report.ProviderOnly)))
	field(&b, "Statement total", report.StatementTotal.StringFixed(2))
	field(&b, "Provider total", report.ProviderTotal.StringFixed(2))

	unmatched := report.UnmatchedAmount.StringFixed(2)
	if !report.UnmatchedAmount.IsZero() {
		unmatched = errorStyle.Render(unmatched)
	}
	field(&b, "Difference", unmatched)

	if len(report.Matched) > 0 {
		t := newTable("STATEMENT DATE", "DESCRIPTION", "AMOUNT", "PROVIDER DATE", "NAME", "DAYS")
		for _, m := range report.Matched {
			t.Row(
				m.Statement.Date.String(),
				m.Statement.Description,
				m.Statement.Amount.StringFixed(2),
				m.Provider.Date.String(),
				m.Provider.Name,
				strconv.Itoa(m.DayDelta),
			)
		}
		section(&b, "Matched", t)
	}

	if len(report.StatementOnly) > 0 {
		t := newTable("DATE", "DESCRIPTION", "AMOUNT")
		for _, s := range report.StatementOnly {
			t.Row(s.Date.String(), s.Description, s.Amount.StringFixed(2))
		}
		section(&b, "On the statement only", t)
	}

	if len(report.ProviderOnly) > 0 {
		t := newTable("DATE", "NAME", "AMOUNT", "ACCOUNT", "PENDING")
		for _, p := range report.ProviderOnly {
			t.Row(p.Date.String(), p.Name, p.Amount.StringFixed(2), p.AccountID, strconv.FormatBool(p.Pending))
		}
		section(&b, "Synced only", t)
	}

	return b.String()
}

func section(b *strings.Builder, title string, t *table.Table) {
	t.StyleFunc(func(row, _ int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		return cellStyle
	})
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")
}

func field(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s%s\n", labelStyle.Render(label), value)
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "never"
	}
	return t.Local().Format(timeLayout)
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
