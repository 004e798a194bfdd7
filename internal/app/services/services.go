package services

// Services defined in this package:
// - CourseStore: owns the course list and the single edit slot
// - GPAService: computes GPA, weighted average and total credits for the calculation endpoint
