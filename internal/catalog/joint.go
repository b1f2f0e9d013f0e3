package catalog

import "fmt"

// Joint identifies a supported body joint.
type Joint string

const (
	JointKnee     Joint = "knee"
	JointHip      Joint = "hip"
	JointShoulder Joint = "shoulder"
)

// AllJoints returns the supported joints in display order.
func AllJoints() []Joint {
	return []Joint{JointKnee, JointHip, JointShoulder}
}

// DisplayName returns a human-readable name for a joint.
func DisplayName(j Joint) string {
	switch j {
	case JointKnee:
		return "Knee"
	case JointHip:
		return "Hip"
	case JointShoulder:
		return "Shoulder"
	default:
		return string(j)
	}
}

// UnsupportedJointError reports a joint outside the supported set.
type UnsupportedJointError struct {
	Joint string
}

func (e *UnsupportedJointError) Error() string {
	return fmt.Sprintf("unsupported joint %q", e.Joint)
}

// ParseJoint validates a joint name against the supported set.
func ParseJoint(s string) (Joint, error) {
	for _, j := range AllJoints() {
		if string(j) == s {
			return j, nil
		}
	}
	return "", &UnsupportedJointError{Joint: s}
}
