package authsvc

import (
	"time"

	"superwallet/model"
)

// DemoIdentifier logs into a pre-populated account, standing in for the
// "previously-known user" branch of the original mock backend.
const DemoIdentifier = "demo@superwallet.id"

func newSession(identifier string) *model.Session {
	now := time.Now().UTC()
	return &model.Session{
		User: &model.User{
			ID:         model.NewID("usr"),
			Identifier: identifier,
			Level:      model.LevelBronze,
			CreatedAt:  now,
		},
		IsNewUser: true,
		Missions:  defaultMissions(),
	}
}

func defaultMissions() []model.Mission {
	return []model.Mission{
		{
			ID:           model.NewID("msn"),
			Title:        "First Payment",
			Description:  "Pay any bill once",
			Target:       1,
			RewardType:   model.RewardPoints,
			RewardAmount: 50,
		},
		{
			ID:           model.NewID("msn"),
			Title:        "Bill Crusher",
			Description:  "Pay 5 bills",
			Target:       5,
			RewardType:   model.RewardPoints,
			RewardAmount: 250,
		},
		{
			ID:           model.NewID("msn"),
			Title:        "Savings Starter",
			Description:  "Top up your savings 3 times",
			Target:       3,
			RewardType:   model.RewardCashback,
			RewardAmount: 10_000,
		},
	}
}

func demoSession(identifier string) *model.Session {
	if identifier != DemoIdentifier {
		return nil
	}
	now := time.Now().UTC()
	sess := &model.Session{
		User: &model.User{
			ID:         model.NewID("usr"),
			Identifier: identifier,
			FullName:   "Dimas Anggara",
			Phone:      "+6281234567890",
			Username:   "dimas",
			Points:     620,
			Level:      model.LevelForPoints(620),
			CreatedAt:  now.AddDate(0, -6, 0),
		},
		IsProfileComplete: true,
		Wallet: model.Wallet{
			BalanceMain:    1_000_000,
			BalanceMarket:  250_000,
			BalanceSavings: 1_500_000,
			BalancePoints:  620,
		},
		Missions: defaultMissions(),
	}

	sess.Transactions = []model.Transaction{
		{
			ID:          model.NewID("txn"),
			Type:        model.TxTopup,
			Amount:      500_000,
			Status:      model.TxSuccess,
			Description: "Top up via bank transfer",
			CreatedAt:   now.AddDate(0, 0, -3),
		},
		{
			ID:          model.NewID("txn"),
			Type:        model.TxBillPayment,
			Amount:      -120_000,
			Fee:         2_500,
			Status:      model.TxSuccess,
			Description: "Internet bill July",
			CreatedAt:   now.AddDate(0, 0, -10),
		},
	}

	sess.Bills = []model.Bill{
		{
			ID:         model.NewID("bil"),
			Type:       model.BillElectricity,
			Name:       "PLN Postpaid",
			CustomerID: "521300012345",
			Amount:     385_000,
			Period:     now.Format("2006-01"),
			DueDate:    now.AddDate(0, 0, 12),
			Status:     model.BillPending,
			CreatedAt:  now.AddDate(0, -1, 0),
		},
		{
			ID:         model.NewID("bil"),
			Type:       model.BillInternet,
			Name:       "IndiHome 50Mbps",
			CustomerID: "130099887766",
			Amount:     315_000,
			Period:     now.Format("2006-01"),
			DueDate:    now.AddDate(0, 0, 20),
			Status:     model.BillPending,
			CreatedAt:  now.AddDate(0, -1, 0),
		},
	}

	sess.Installments = []model.Installment{
		{
			ID:             model.NewID("ins"),
			Name:           "Smartphone financing",
			Tenure:         12,
			PaidTenure:     4,
			MonthlyPayment: 450_000,
			TotalAmount:    5_400_000,
			PaidAmount:     1_800_000,
			NextDueDate:    now.AddDate(0, 0, 15),
			Status:         model.InstallmentActive,
			CreatedAt:      now.AddDate(0, -4, 0),
		},
	}

	sess.Notifications = []model.Notification{
		{
			ID:        model.NewID("ntf"),
			Type:      model.NotifyWelcome,
			Title:     "Welcome back",
			Message:   "Good to see you again, Dimas.",
			CreatedAt: now,
		},
	}
	return sess
}
