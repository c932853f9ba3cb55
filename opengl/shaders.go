//go:build !nogl

package opengl

// Shader sources are embedded so the binary is self-contained.

const vertexShader = `#version 330 core

out vec2 frag_uv;

const vec2 verts[6] = vec2[](
	vec2(-1.0, -1.0), vec2(1.0, -1.0), vec2(1.0, 1.0),
	vec2(-1.0, -1.0), vec2(1.0, 1.0), vec2(-1.0, 1.0)
);

void main() {
	vec2 v = verts[gl_VertexID];
	frag_uv = 0.5 * (v + 1.0);
	gl_Position = vec4(v, 0.0, 1.0);
}
`

const fragmentShader = `#version 330 core

#define MAX_PARTICLES 64

uniform uint particle_count;
uniform float aspect_ratio;
uniform float tail_critical_value;
uniform vec3 particle_pos_rad[MAX_PARTICLES];
uniform vec3 particle_color[MAX_PARTICLES];
uniform vec4 particle_shape[MAX_PARTICLES];

in vec2 frag_uv;
out vec4 out_color;

vec3 hsv2rgb(vec3 c) {
	vec4 k = vec4(1.0, 2.0 / 3.0, 1.0 / 3.0, 3.0);
	vec3 p = abs(fract(c.xxx + k.xyz) * 6.0 - k.www);
	return c.z * mix(vec3(1.0), clamp(p - k.xxx, 0.0, 1.0), c.y);
}

void main() {
	// Simulation space: x in [0, aspect_ratio], y in [0, 1].
	vec2 p = vec2(frag_uv.x * aspect_ratio, frag_uv.y);

	vec3 acc = vec3(0.0);
	for (uint i = 0u; i < particle_count; i++) {
		vec3 pos_rad = particle_pos_rad[i];
		vec4 shape = particle_shape[i];
		vec2 d = p - pos_rad.xy;

		// Star silhouette: the effective radius swells and shrinks
		// with the angle around the center. shape holds point count,
		// rotation, plumpness and warp.
		float theta = atan(d.y, d.x) - shape.y;
		float silhouette = shape.z + shape.w * cos(shape.x * theta);
		float r = pos_rad.z * silhouette;

		float field = r * r / max(dot(d, d), 1e-6);
		acc += hsv2rgb(particle_color[i]) * field;
	}

	// A pixel at field strength tail_critical_value saturates to
	// white; below it the glow tails off.
	out_color = vec4(clamp(acc / max(tail_critical_value, 1e-4), 0.0, 1.0), 1.0);
}
`
