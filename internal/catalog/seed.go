package catalog

// seedExercises is the built-in exercise library: one exercise per
// (joint, level, category) cell, plus a few extra variations on the lower
// knee levels where the plan generator benefits from alternatives.
var seedExercises = []Exercise{
	// Knee — level 1
	{ID: "knee-l1-extensor-isometric", Name: "Isometric quad squeeze", Joint: JointKnee, Level: 1, Category: "extensor"},
	{ID: "knee-l1-extensor-slr", Name: "Straight leg raise", Joint: JointKnee, Level: 1, Category: "extensor"},
	{ID: "knee-l1-flexor-heel-slide", Name: "Heel slide", Joint: JointKnee, Level: 1, Category: "flexor"},
	{ID: "knee-l1-mobility-pendulum", Name: "Seated knee pendulum", Joint: JointKnee, Level: 1, Category: "mobility"},
	// Knee — level 2
	{ID: "knee-l2-extensor-extension", Name: "Seated knee extension", Joint: JointKnee, Level: 2, Category: "extensor"},
	{ID: "knee-l2-extensor-wall-sit", Name: "Shallow wall sit", Joint: JointKnee, Level: 2, Category: "extensor"},
	{ID: "knee-l2-flexor-bridge", Name: "Glute bridge", Joint: JointKnee, Level: 2, Category: "flexor"},
	{ID: "knee-l2-mobility-step-through", Name: "Standing step-through", Joint: JointKnee, Level: 2, Category: "mobility"},
	// Knee — level 3
	{ID: "knee-l3-extensor-sit-to-stand", Name: "Sit to stand", Joint: JointKnee, Level: 3, Category: "extensor"},
	{ID: "knee-l3-flexor-hamstring-curl", Name: "Standing hamstring curl", Joint: JointKnee, Level: 3, Category: "flexor"},
	{ID: "knee-l3-mobility-step-up", Name: "Low step-up", Joint: JointKnee, Level: 3, Category: "mobility"},
	// Knee — level 4
	{ID: "knee-l4-extensor-split-squat", Name: "Split squat", Joint: JointKnee, Level: 4, Category: "extensor"},
	{ID: "knee-l4-flexor-single-bridge", Name: "Single-leg bridge", Joint: JointKnee, Level: 4, Category: "flexor"},
	{ID: "knee-l4-mobility-lateral-lunge", Name: "Lateral lunge", Joint: JointKnee, Level: 4, Category: "mobility"},

	// Hip — level 1
	{ID: "hip-l1-abductor-isometric", Name: "Isometric hip abduction", Joint: JointHip, Level: 1, Category: "abductor"},
	{ID: "hip-l1-extensor-glute-squeeze", Name: "Supine glute squeeze", Joint: JointHip, Level: 1, Category: "extensor"},
	{ID: "hip-l1-mobility-knee-rock", Name: "Supine knee rock", Joint: JointHip, Level: 1, Category: "mobility"},
	// Hip — level 2
	{ID: "hip-l2-abductor-side-raise", Name: "Side-lying leg raise", Joint: JointHip, Level: 2, Category: "abductor"},
	{ID: "hip-l2-extensor-bridge", Name: "Glute bridge", Joint: JointHip, Level: 2, Category: "extensor"},
	{ID: "hip-l2-mobility-figure-four", Name: "Seated figure-four stretch", Joint: JointHip, Level: 2, Category: "mobility"},
	// Hip — level 3
	{ID: "hip-l3-abductor-clamshell", Name: "Banded clamshell", Joint: JointHip, Level: 3, Category: "abductor"},
	{ID: "hip-l3-extensor-hinge", Name: "Hip hinge", Joint: JointHip, Level: 3, Category: "extensor"},
	{ID: "hip-l3-mobility-hip-flexor-lunge", Name: "Half-kneeling hip flexor stretch", Joint: JointHip, Level: 3, Category: "mobility"},
	// Hip — level 4
	{ID: "hip-l4-abductor-lateral-walk", Name: "Banded lateral walk", Joint: JointHip, Level: 4, Category: "abductor"},
	{ID: "hip-l4-extensor-single-rdl", Name: "Single-leg Romanian deadlift", Joint: JointHip, Level: 4, Category: "extensor"},
	{ID: "hip-l4-mobility-deep-squat", Name: "Deep squat hold", Joint: JointHip, Level: 4, Category: "mobility"},

	// Shoulder — level 1
	{ID: "shoulder-l1-cuff-isometric", Name: "Isometric external rotation", Joint: JointShoulder, Level: 1, Category: "cuff"},
	{ID: "shoulder-l1-scapular-squeeze", Name: "Scapular squeeze", Joint: JointShoulder, Level: 1, Category: "scapular"},
	{ID: "shoulder-l1-mobility-pendulum", Name: "Pendulum swing", Joint: JointShoulder, Level: 1, Category: "mobility"},
	// Shoulder — level 2
	{ID: "shoulder-l2-cuff-band-rotation", Name: "Banded external rotation", Joint: JointShoulder, Level: 2, Category: "cuff"},
	{ID: "shoulder-l2-scapular-wall-slide", Name: "Wall slide", Joint: JointShoulder, Level: 2, Category: "scapular"},
	{ID: "shoulder-l2-mobility-stick-raise", Name: "Assisted stick raise", Joint: JointShoulder, Level: 2, Category: "mobility"},
	// Shoulder — level 3
	{ID: "shoulder-l3-cuff-side-rotation", Name: "Side-lying external rotation", Joint: JointShoulder, Level: 3, Category: "cuff"},
	{ID: "shoulder-l3-scapular-row", Name: "Banded row", Joint: JointShoulder, Level: 3, Category: "scapular"},
	{ID: "shoulder-l3-mobility-sleeper", Name: "Sleeper stretch", Joint: JointShoulder, Level: 3, Category: "mobility"},
	// Shoulder — level 4
	{ID: "shoulder-l4-cuff-press", Name: "Half-kneeling press", Joint: JointShoulder, Level: 4, Category: "cuff"},
	{ID: "shoulder-l4-scapular-pushup-plus", Name: "Push-up plus", Joint: JointShoulder, Level: 4, Category: "scapular"},
	{ID: "shoulder-l4-mobility-thread", Name: "Thread the needle", Joint: JointShoulder, Level: 4, Category: "mobility"},
}
