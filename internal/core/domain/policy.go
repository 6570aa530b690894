package domain

// Pure authorization decisions. These are total over their inputs and never
// error; callers translate a false result into ErrForbidden.

// CanCreateCourse reports whether actor may create a course.
func CanCreateCourse(actor User) bool {
	return actor.Role == RoleInstructor || actor.Role == RoleAdmin
}

// CanManageCourse reports whether actor may update or delete course.
// Only the owning instructor or an admin may.
func CanManageCourse(actor User, course Course) bool {
	return actor.ID == course.InstructorID || actor.Role == RoleAdmin
}

// CanViewEnrollmentsOf reports whether actor may list the enrollments of
// the user identified by targetUserID. Users see their own; admins see all.
func CanViewEnrollmentsOf(actor User, targetUserID string) bool {
	return actor.ID == targetUserID || actor.Role == RoleAdmin
}
