package reconcile

import (
	"fmt"

	"github.com/hartbuilt/project_finance_app/internal/core/domain"
	"github.com/hartbuilt/project_finance_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

// TrackContingency computes the contingency buffer figures. ContingencyUsed
// is authoritative input from the allocation workflow; the tracker reconciles
// it against change orders that bill contingency to the client and reports
// overruns as non-fatal warnings. The displayed available buffer is floored
// at zero while the raw deficit is retained for audit.
func TrackContingency(project domain.Project, changeOrders []domain.ChangeOrder) (domain.ContingencyFigures, []domain.ReconciliationWarning) {
	warnings := make([]domain.ReconciliationWarning, 0)

	billedTotal := decimal.Zero
	for _, co := range changeOrders {
		if co.ProjectID != project.ProjectID || !co.IsApproved() || !co.IncludesContingency {
			continue
		}
		billedTotal = billedTotal.Add(co.ContingencyBilledToClient)
	}

	if billedTotal.GreaterThan(project.ContingencyAmount) {
		warnings = append(warnings, domain.ReconciliationWarning{
			Code:      domain.WarnContingencyOverrun,
			ProjectID: project.ProjectID,
			Message: fmt.Sprintf("contingency billed to client %s exceeds contingency amount %s",
				billedTotal.String(), project.ContingencyAmount.String()),
			Delta: project.ContingencyAmount.Sub(billedTotal),
		})
	}

	rawAvailable := project.ContingencyAmount.Sub(project.ContingencyUsed)
	if rawAvailable.IsNegative() {
		warnings = append(warnings, domain.ReconciliationWarning{
			Code:      domain.WarnContingencyOverrun,
			ProjectID: project.ProjectID,
			Message: fmt.Sprintf("contingency used %s exceeds contingency amount %s",
				project.ContingencyUsed.String(), project.ContingencyAmount.String()),
			Delta: rawAvailable,
		})
	}

	figures := domain.ContingencyFigures{
		ContingencyAmount:              project.ContingencyAmount,
		ContingencyUsed:                project.ContingencyUsed,
		AvailableContingency:           money.FloorZero(rawAvailable),
		RawAvailableContingency:        rawAvailable,
		ContingencyUtilizationPercent:  money.Percent(project.ContingencyUsed, project.ContingencyAmount),
		ContingencyBilledToClientTotal: billedTotal,
	}
	return figures, warnings
}
