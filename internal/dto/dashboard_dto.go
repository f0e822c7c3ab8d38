package dto

// DashboardStatsResponse aggregates record counts for the caller's scope.
// Campus is "All" for admins and the caller's campus otherwise.
type DashboardStatsResponse struct {
	Campus            string `json:"campus"`
	StudentCount      int64  `json:"student_count"`
	TeacherCount      int64  `json:"teacher_count"`
	SyllabusCount     int64  `json:"syllabus_count"`
	AnnouncementCount int64  `json:"announcement_count"`
}
