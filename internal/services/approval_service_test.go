package services

import (
	"testing"

	"finsight/internal/models"
	"finsight/internal/testutil"
)

func TestApprovalService(t *testing.T) {
	t.Run("list_with_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewApprovalService(db)
		testutil.CreateTestApproval(t, db, "Asha", models.DirectionGiven, 500, testutil.Date(2025, 1, 1))
		testutil.CreateTestApproval(t, db, "Ravi", models.DirectionTaken, 200, testutil.Date(2025, 2, 1))
		_, err := svc.CreateApproval(ApprovalInput{Person: "Meera", TransactionType: models.DirectionGiven, Amount: 50, Date: testutil.Date(2025, 3, 1), Approved: true})
		testutil.AssertNoError(t, err)

		all, err := svc.ListApprovals(nil)
		testutil.AssertNoError(t, err)
		if len(all) != 3 || all[0].Person != "Meera" {
			t.Fatalf("expected 3 approvals newest first, got %+v", all)
		}

		pending := false
		open, err := svc.ListApprovals(&pending)
		testutil.AssertNoError(t, err)
		if len(open) != 2 {
			t.Errorf("expected 2 pending approvals, got %d", len(open))
		}
	})

	t.Run("invalid_direction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewApprovalService(db)

		_, err := svc.CreateApproval(ApprovalInput{Person: "Asha", TransactionType: "lent", Amount: 10, Date: testutil.Date(2025, 1, 1)})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("approve", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewApprovalService(db)
		a := testutil.CreateTestApproval(t, db, "Asha", models.DirectionGiven, 500, testutil.Date(2025, 1, 1))

		approved := true
		updated, err := svc.UpdateApproval(a.ID, ApprovalUpdate{Approved: &approved})
		testutil.AssertNoError(t, err)
		if !updated.Approved || updated.Amount != 500 {
			t.Errorf("unexpected approval %+v", updated)
		}

		reloaded, err := svc.GetApproval(a.ID)
		testutil.AssertNoError(t, err)
		if !reloaded.Approved {
			t.Error("expected approval to persist")
		}
	})

	t.Run("delete_missing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewApprovalService(db)

		testutil.AssertAppError(t, svc.DeleteApproval("0190f3a2-7b1c-7d4e-8f00-112233445566"), "APPROVAL_NOT_FOUND")
		_, err := svc.UpdateApproval("0190f3a2-7b1c-7d4e-8f00-112233445566", ApprovalUpdate{})
		testutil.AssertAppError(t, err, "APPROVAL_NOT_FOUND")
	})
}
