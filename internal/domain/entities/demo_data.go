package entities

import (
	"fmt"
	"time"
)

// FieldSpec describes a well-known constraint field.
type FieldSpec struct {
	Key   string
	Label string
	Unit  string
}

// DefaultFields are the constraint fields every site is checked for.
var DefaultFields = []FieldSpec{
	{Key: "height", Label: "진입 제한 높이", Unit: "m"},
	{Key: "dock", Label: "도크 정보"},
	{Key: "forklift", Label: "지게차 지원"},
	{Key: "wait", Label: "대기 장소"},
	{Key: "time", Label: "작업 가능 시간"},
}

// FieldByKey returns the default field spec for key.
func FieldByKey(key string) (FieldSpec, bool) {
	for _, f := range DefaultFields {
		if f.Key == key {
			return f, true
		}
	}
	return FieldSpec{}, false
}

var demoPlaceTypes = []PlaceType{PlaceTypeWarehouse, PlaceTypeFactory, PlaceTypeStore, PlaceTypePort}

// demoRatings[place][round] gives each demo place three reviews.
var demoRatings = [10][3]int{
	{5, 5, 4}, {4, 4, 5}, {3, 3, 4}, {4, 3, 4}, {3, 3, 3},
	{5, 4, 5}, {4, 4, 4}, {3, 4, 4}, {5, 5, 5}, {3, 4, 3},
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func timePtr(t time.Time) *time.Time { return &t }

// DemoSnapshot builds the deterministic demo dataset. Recent pending
// requests are dated relative to now.
func DemoSnapshot(now time.Time) *Snapshot {
	snap := &Snapshot{}

	for i := 0; i < 10; i++ {
		lat := 37.4 + float64(i)*0.01
		lng := 127.2 + float64(i)*0.01
		snap.Places = append(snap.Places, Place{
			ID:      fmt.Sprintf("p%d", i+1),
			Name:    fmt.Sprintf("물류센터 %c동", 'A'+i),
			Address: fmt.Sprintf("경기도 광주시 초월읍 무들로 %d", 100+i*50),
			Type:    demoPlaceTypes[i%len(demoPlaceTypes)],
			Lat:     &lat,
			Lng:     &lng,
		})
	}

	for i, place := range snap.Places {
		for j, field := range DefaultFields {
			if (i*len(DefaultFields)+j)%7 == 6 {
				continue
			}
			value := "정보 있음"
			if j == 0 {
				value = fmt.Sprintf("%.1f", 3.5+float64((i*37)%10)/10)
			}
			snap.Constraints = append(snap.Constraints, Constraint{
				ID:        fmt.Sprintf("c_%s_%s", place.ID, field.Key),
				PlaceID:   place.ID,
				FieldKey:  field.Key,
				Label:     field.Label,
				Value:     value,
				Unit:      field.Unit,
				Status:    ConstraintConfirmed,
				UpdatedAt: day("2023-10-01"),
			})
		}
	}

	for i := 0; i < 30; i++ {
		user := DemoUsers[i%2]
		tip, tags := "진입로가 넓습니다. 직원분들은 친절합니다.", []string{"직원친절", "빠른하차"}
		if i%2 == 1 {
			tip, tags = "진입로가 좁으니 주의하세요. 직원분들은 친절합니다.", []string{"대기시간김", "진입로좁음"}
		}
		snap.Reviews = append(snap.Reviews, Review{
			ID:        fmt.Sprintf("r%d", i+1),
			PlaceID:   fmt.Sprintf("p%d", i%10+1),
			UserID:    user.ID,
			UserName:  user.Name,
			Rating:    demoRatings[i%10][i/10],
			TipText:   tip,
			Tags:      tags,
			CreatedAt: day("2023-10-15"),
		})
	}

	driver, driver2, dispatcher := DemoUsers[0], DemoUsers[1], DemoUsers[2]
	for i := 0; i < 4; i++ {
		snap.Requests = append(snap.Requests, EditRequest{
			ID:              fmt.Sprintf("req_p%d", i+1),
			PlaceID:         fmt.Sprintf("p%d", i+1),
			ConstraintID:    fmt.Sprintf("c_p%d_height", i+1),
			FieldKey:        "height",
			FieldLabel:      "진입 제한 높이",
			CurrentValue:    "3.8",
			RequestedValue:  "4.2",
			RequestedBy:     driver.ID,
			RequestedByName: driver.Name,
			RequestedByRole: driver.Role,
			Status:          RequestPending,
			Note:            "최근 공사로 높이 제한이 변경되었습니다.",
			EvidenceFiles:   []string{fmt.Sprintf("evidence/height_p%d.jpg", i+1)},
			CreatedAt:       now.Add(-time.Duration(i) * 24 * time.Hour),
		})
	}
	snap.Requests = append(snap.Requests,
		EditRequest{
			ID: "req_dispute_1", PlaceID: "p5", ConstraintID: "c_p5_dock", FieldKey: "dock", FieldLabel: "도크 정보",
			CurrentValue: "2개", RequestedValue: "도크 4개",
			RequestedBy: driver.ID, RequestedByName: driver.Name, RequestedByRole: driver.Role,
			Status: RequestPending, Note: "도크 확장됨", CreatedAt: now,
		},
		EditRequest{
			ID: "req_dispute_2", PlaceID: "p5", ConstraintID: "c_p5_dock", FieldKey: "dock", FieldLabel: "도크 정보",
			CurrentValue: "2개", RequestedValue: "도크 3개 (1개 수리중)",
			RequestedBy: driver2.ID, RequestedByName: driver2.Name, RequestedByRole: driver2.Role,
			Status: RequestPending, Note: "수리중이라 3개만 사용가능", EvidenceFiles: []string{"evidence/dock_p5.jpg"},
			CreatedAt: now.Add(-time.Hour),
		},
		EditRequest{
			ID: "req_a1", PlaceID: "p1", ConstraintID: "c_p1_dock", FieldKey: "dock", FieldLabel: "도크 정보",
			CurrentValue: "없음", RequestedValue: "도크 3개 증설",
			RequestedBy: dispatcher.ID, RequestedByName: dispatcher.Name, RequestedByRole: dispatcher.Role,
			Status: RequestApproved, ReviewerID: "ops1", ReviewerNote: "현장 확인 완료",
			CreatedAt: day("2023-10-01"), DecidedAt: timePtr(day("2023-10-02")),
		},
		EditRequest{
			ID: "req_a2", PlaceID: "p2", ConstraintID: "c_p2_wait", FieldKey: "wait", FieldLabel: "대기 장소",
			CurrentValue: "도로변", RequestedValue: "내부 주차장",
			RequestedBy: driver.ID, RequestedByName: driver.Name, RequestedByRole: driver.Role,
			Status: RequestApproved, ReviewerID: "ops1", ReviewerNote: "확인됨",
			CreatedAt: day("2023-10-03"), DecidedAt: timePtr(day("2023-10-04")),
		},
		EditRequest{
			ID: "req_r1", PlaceID: "p3", ConstraintID: "c_p3_height", FieldKey: "height", FieldLabel: "진입 제한 높이",
			CurrentValue: "4.0", RequestedValue: "5.0",
			RequestedBy: driver2.ID, RequestedByName: driver2.Name, RequestedByRole: driver2.Role,
			Status: RequestRejected, ReviewerID: "ops1", ReviewerNote: "해당 높이 진입 불가함 (로드뷰 확인)",
			CreatedAt: day("2023-10-05"), DecidedAt: timePtr(day("2023-10-06")),
		},
		EditRequest{
			ID: "req_r2", PlaceID: "p3", ConstraintID: "c_p3_time", FieldKey: "time", FieldLabel: "작업 가능 시간",
			CurrentValue: "09:00-18:00", RequestedValue: "24시간",
			RequestedBy: driver2.ID, RequestedByName: driver2.Name, RequestedByRole: driver2.Role,
			Status: RequestRejected, ReviewerID: "ops1", ReviewerNote: "야간 작업 불가 사업장",
			CreatedAt: day("2023-10-07"), DecidedAt: timePtr(day("2023-10-08")),
		},
	)

	snap.Versions = []PlaceVersion{
		{
			ID: "v1", PlaceID: "p1", SourceRequestID: "req_a1", FieldKey: "dock", Label: "도크 정보",
			OldValue: "없음", NewValue: "도크 3개 증설", ApprovedBy: "ops1", CreatedAt: day("2023-10-02"),
		},
		{
			ID: "v2", PlaceID: "p2", SourceRequestID: "req_a2", FieldKey: "wait", Label: "대기 장소",
			OldValue: "도로변", NewValue: "내부 주차장", ApprovedBy: "ops1", CreatedAt: day("2023-10-04"),
		},
	}

	snap.Announcements = []Announcement{
		{
			ID: "ann1", PlaceID: "p1", Title: "연말 물량 증가로 인한 대기 안내",
			Content:   "연말 물량 증가로 인해 평균 대기시간이 1시간 이상 소요되고 있습니다. 3번 게이트 대기소를 이용해주세요.",
			CreatedBy: dispatcher.ID, CreatedAt: day("2023-11-01"), IsActive: true,
		},
	}

	return snap
}
